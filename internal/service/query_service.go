package service

import (
	"errors"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardStats combines the summary, low-stock count, and most recent
// movements into the dashboard aggregate.
type DashboardStats struct {
	StockSummary       *repository.StockSummary `json:"stock_summary"`
	LowStockCount      int                      `json:"low_stock_count"`
	RecentTransactions []model.Transaction      `json:"recent_transactions"`
}

// QueryService is the read-only side: projections over the same tables the
// ledger writes. Never mutates state.
type QueryService interface {
	Inventory(search string, page, perPage int) ([]model.Inventory, repository.Pagination, error)
	InventoryByProduct(productID uuid.UUID) (*model.Inventory, error)
	StockSummary() (*repository.StockSummary, error)
	StockByCategory() ([]repository.CategoryStock, error)
	StockBySupplier() ([]repository.SupplierStock, error)
	Transactions(filter repository.TransactionFilter) ([]model.Transaction, repository.Pagination, error)
	TransactionByID(id uuid.UUID) (*model.Transaction, error)
	ProductHistory(productID uuid.UUID, filter repository.TransactionFilter) ([]model.Transaction, error)
	TransactionSummary(filter repository.TransactionFilter) ([]repository.TransactionSummary, error)
	RecentTransactions(limit int) ([]model.Transaction, error)
	DashboardStats() (*DashboardStats, error)
}

type queryService struct {
	inventoryRepo   repository.InventoryRepository
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
}

func NewQueryService(
	iRepo repository.InventoryRepository,
	tRepo repository.TransactionRepository,
	pRepo repository.ProductRepository,
) QueryService {
	return &queryService{
		inventoryRepo:   iRepo,
		transactionRepo: tRepo,
		productRepo:     pRepo,
	}
}

func (s *queryService) Inventory(search string, page, perPage int) ([]model.Inventory, repository.Pagination, error) {
	return s.inventoryRepo.List(search, page, perPage)
}

func (s *queryService) InventoryByProduct(productID uuid.UUID) (*model.Inventory, error) {
	inv, err := s.inventoryRepo.FindByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("inventory not found")
		}
		return nil, err
	}
	return inv, nil
}

func (s *queryService) StockSummary() (*repository.StockSummary, error) {
	return s.inventoryRepo.StockSummary()
}

func (s *queryService) StockByCategory() ([]repository.CategoryStock, error) {
	return s.inventoryRepo.ByCategory()
}

func (s *queryService) StockBySupplier() ([]repository.SupplierStock, error) {
	return s.inventoryRepo.BySupplier()
}

func (s *queryService) Transactions(filter repository.TransactionFilter) ([]model.Transaction, repository.Pagination, error) {
	return s.transactionRepo.List(filter)
}

func (s *queryService) TransactionByID(id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.transactionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction not found")
		}
		return nil, err
	}
	return txn, nil
}

func (s *queryService) ProductHistory(productID uuid.UUID, filter repository.TransactionFilter) ([]model.Transaction, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}
	return s.transactionRepo.HistoryByProduct(productID, filter.StartDate, filter.EndDate)
}

func (s *queryService) TransactionSummary(filter repository.TransactionFilter) ([]repository.TransactionSummary, error) {
	return s.transactionRepo.Summary(filter.StartDate, filter.EndDate)
}

func (s *queryService) RecentTransactions(limit int) ([]model.Transaction, error) {
	return s.transactionRepo.Recent(limit)
}

func (s *queryService) DashboardStats() (*DashboardStats, error) {
	summary, err := s.inventoryRepo.StockSummary()
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.LowStock(nil)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.Recent(5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		StockSummary:       summary,
		LowStockCount:      len(lowStock),
		RecentTransactions: recent,
	}, nil
}
