package handler

import (
	"strconv"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	query    service.QueryService
	products service.ProductService
}

func NewReportHandler(query service.QueryService, products service.ProductService) *ReportHandler {
	return &ReportHandler{query: query, products: products}
}

// StockSummary handles GET /reports/stock-summary
func (h *ReportHandler) StockSummary(c *fiber.Ctx) error {
	summary, err := h.query.StockSummary()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, summary)
}

// LowStock handles GET /reports/low-stock?threshold=N
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return respondErr(c, apperr.InvalidArgument("invalid threshold"))
		}
		threshold = &v
	}

	products, err := h.products.LowStock(threshold)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, products)
}

// TransactionSummary handles GET /reports/transaction-summary
func (h *ReportHandler) TransactionSummary(c *fiber.Ctx) error {
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

// CategoryWise handles GET /reports/category-wise
func (h *ReportHandler) CategoryWise(c *fiber.Ctx) error {
	rollup, err := h.query.StockByCategory()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, rollup)
}

// SupplierWise handles GET /reports/supplier-wise
func (h *ReportHandler) SupplierWise(c *fiber.Ctx) error {
	rollup, err := h.query.StockBySupplier()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, rollup)
}

// DashboardStats handles GET /reports/dashboard-stats
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.query.DashboardStats()
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, stats)
}
