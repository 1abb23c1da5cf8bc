package repository

import (
	"time"

	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows the transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	ProductID uuid.UUID
	Type      model.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PerPage   int
}

// TransactionSummary aggregates movements by type over a date range.
type TransactionSummary struct {
	Type          model.TransactionType `json:"type"`
	Count         int64                 `json:"transaction_count"`
	TotalQuantity int64                 `json:"total_quantity"`
}

type TransactionRepository interface {
	List(filter TransactionFilter) ([]model.Transaction, Pagination, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	HistoryByProduct(productID uuid.UUID, start, end *time.Time) ([]model.Transaction, error)
	Summary(start, end *time.Time) ([]TransactionSummary, error)
	Recent(limit int) ([]model.Transaction, error)
	CountByProduct(productID uuid.UUID) (int64, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func applyDateRange(q *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		q = q.Where("DATE(created_at) >= DATE(?)", *start)
	}
	if end != nil {
		q = q.Where("DATE(created_at) <= DATE(?)", *end)
	}
	return q
}

func (r *transactionRepo) List(filter TransactionFilter) ([]model.Transaction, Pagination, error) {
	q := r.db.Model(&model.Transaction{})

	if filter.ProductID != uuid.Nil {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	q = applyDateRange(q, filter.StartDate, filter.EndDate)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	page := NewPagination(filter.Page, filter.PerPage, total)

	var transactions []model.Transaction
	err := q.Preload("Product").
		Order("created_at DESC").
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&transactions).Error
	return transactions, page, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) HistoryByProduct(productID uuid.UUID, start, end *time.Time) ([]model.Transaction, error) {
	q := r.db.Where("product_id = ?", productID)
	q = applyDateRange(q, start, end)

	var transactions []model.Transaction
	err := q.Preload("Product").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Summary(start, end *time.Time) ([]TransactionSummary, error) {
	q := r.db.Model(&model.Transaction{})
	q = applyDateRange(q, start, end)

	var summary []TransactionSummary
	err := q.Select("type, COUNT(*) as count, COALESCE(SUM(quantity), 0) as total_quantity").
		Group("type").
		Order("type").
		Scan(&summary).Error
	return summary, err
}

func (r *transactionRepo) Recent(limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	var transactions []model.Transaction
	err := r.db.Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) CountByProduct(productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
