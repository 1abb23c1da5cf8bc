package handler

import (
	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	ledger service.LedgerService
	query  service.QueryService
}

func NewTransactionHandler(ledger service.LedgerService, query service.QueryService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, query: query}
}

// StockMovementRequest is the body for stock-in and stock-out.
type StockMovementRequest struct {
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        int       `json:"quantity"`
	ReferenceNumber string    `json:"reference_number"`
	Remarks         string    `json:"remarks"`
}

// AdjustStockRequest is the body for a stock adjustment.
type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  *int      `json:"quantity"`
	Remarks   string    `json:"remarks"`
}

// StockIn handles POST /transactions/stock-in
func (h *TransactionHandler) StockIn(c *fiber.Ctx) error {
	var req StockMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}
	if req.ProductID == uuid.Nil {
		return respondErr(c, apperr.InvalidArgument("product_id is required"))
	}

	result, err := h.ledger.StockIn(c.UserContext(), req.ProductID, req.Quantity, req.ReferenceNumber, req.Remarks, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, result)
}

// StockOut handles POST /transactions/stock-out
func (h *TransactionHandler) StockOut(c *fiber.Ctx) error {
	var req StockMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}
	if req.ProductID == uuid.Nil {
		return respondErr(c, apperr.InvalidArgument("product_id is required"))
	}

	result, err := h.ledger.StockOut(c.UserContext(), req.ProductID, req.Quantity, req.ReferenceNumber, req.Remarks, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, result)
}

// Adjust handles POST /transactions/adjust
func (h *TransactionHandler) Adjust(c *fiber.Ctx) error {
	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid JSON body"))
	}
	if req.ProductID == uuid.Nil {
		return respondErr(c, apperr.InvalidArgument("product_id is required"))
	}
	if req.Quantity == nil {
		return respondErr(c, apperr.InvalidArgument("quantity is required"))
	}

	result, err := h.ledger.Adjust(c.UserContext(), req.ProductID, *req.Quantity, req.Remarks, getActor(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respondCreated(c, result)
}

// List handles GET /transactions with optional filters: product_id, type,
// start_date, end_date, page, per_page.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{}
	filter.Page, filter.PerPage = parsePaging(c)

	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondErr(c, apperr.InvalidArgument("invalid product_id"))
		}
		filter.ProductID = id
	}

	if raw := c.Query("type"); raw != "" {
		txType := model.TransactionType(raw)
		switch txType {
		case model.TxIn, model.TxOut, model.TxAdjustment:
			filter.Type = txType
		default:
			return respondErr(c, apperr.InvalidArgument("invalid type: expected IN, OUT or ADJUSTMENT"))
		}
	}

	var err error
	if filter.StartDate, err = parseDateQuery(c, "start_date"); err != nil {
		return respondErr(c, err)
	}
	if filter.EndDate, err = parseDateQuery(c, "end_date"); err != nil {
		return respondErr(c, err)
	}

	transactions, pagination, err := h.query.Transactions(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return respondPage(c, transactions, pagination)
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid transaction ID"))
	}

	txn, err := h.query.TransactionByID(id)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, txn)
}

// History handles GET /transactions/history/:productId
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		return respondErr(c, apperr.InvalidArgument("invalid product ID"))
	}

	filter := repository.TransactionFilter{}
	if filter.StartDate, err = parseDateQuery(c, "start_date"); err != nil {
		return respondErr(c, err)
	}
	if filter.EndDate, err = parseDateQuery(c, "end_date"); err != nil {
		return respondErr(c, err)
	}

	transactions, err := h.query.ProductHistory(productID, filter)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, transactions)
}

// Summary handles GET /transactions/summary
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{}
	var err error
	if filter.StartDate, err = parseDateQuery(c, "start_date"); err != nil {
		return respondErr(c, err)
	}
	if filter.EndDate, err = parseDateQuery(c, "end_date"); err != nil {
		return respondErr(c, err)
	}

	summary, err := h.query.TransactionSummary(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, summary)
}

// Recent handles GET /transactions/recent?limit=N
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	transactions, err := h.query.RecentTransactions(limit)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, transactions)
}
