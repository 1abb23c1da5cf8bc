package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockSummary is the aggregate view over all inventory rows.
type StockSummary struct {
	TotalProducts   int64           `json:"total_products"`
	TotalUnits      int64           `json:"total_units"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockCount   int64           `json:"low_stock_count"`
	OutOfStockCount int64           `json:"out_of_stock_count"`
}

// CategoryStock rolls inventory up by category.
type CategoryStock struct {
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ProductCount int64           `json:"product_count"`
	TotalUnits   int64           `json:"total_units"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// SupplierStock rolls inventory up by supplier.
type SupplierStock struct {
	SupplierID   uuid.UUID       `json:"supplier_id"`
	CompanyName  string          `json:"company_name"`
	ProductCount int64           `json:"product_count"`
	TotalUnits   int64           `json:"total_units"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

type InventoryRepository interface {
	List(search string, page, perPage int) ([]model.Inventory, Pagination, error)
	FindByProductID(productID uuid.UUID) (*model.Inventory, error)
	UpdateLocation(productID uuid.UUID, location, actor string) error
	StockSummary() (*StockSummary, error)
	ByCategory() ([]CategoryStock, error)
	BySupplier() ([]SupplierStock, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) List(search string, page, perPage int) ([]model.Inventory, Pagination, error) {
	q := r.db.Model(&model.Inventory{}).
		Joins("JOIN products ON products.id = inventory.product_id AND products.deleted_at IS NULL")

	if search != "" {
		term := "%" + search + "%"
		q = q.Where("products.name ILIKE ? OR products.sku ILIKE ?", term, term)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	pg := NewPagination(page, perPage, total)

	var records []model.Inventory
	err := q.Preload("Product").Preload("Product.Category").Preload("Product.Supplier").
		Order("products.name ASC").
		Limit(pg.PerPage).Offset(pg.Offset()).
		Find(&records).Error
	return records, pg, err
}

func (r *inventoryRepo) FindByProductID(productID uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.Preload("Product").Preload("Product.Category").Preload("Product.Supplier").
		First(&inv, "product_id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateLocation changes the storage location only; quantity is owned by the
// ledger store.
func (r *inventoryRepo) UpdateLocation(productID uuid.UUID, location, actor string) error {
	return r.db.Model(&model.Inventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"warehouse_location": location,
			"updated_by":         actor,
		}).Error
}

func (r *inventoryRepo) StockSummary() (*StockSummary, error) {
	var summary StockSummary
	err := r.db.Raw(`
		SELECT
			COUNT(DISTINCT i.product_id) as total_products,
			COALESCE(SUM(i.quantity), 0) as total_units,
			COALESCE(SUM(i.quantity * p.unit_price), 0) as total_value,
			COUNT(CASE WHEN i.quantity <= p.reorder_level THEN 1 END) as low_stock_count,
			COUNT(CASE WHEN i.quantity = 0 THEN 1 END) as out_of_stock_count
		FROM inventory i
		INNER JOIN products p ON i.product_id = p.id
		WHERE i.deleted_at IS NULL AND p.deleted_at IS NULL
	`).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *inventoryRepo) ByCategory() ([]CategoryStock, error) {
	var results []CategoryStock
	err := r.db.Raw(`
		SELECT
			c.id as category_id,
			c.name as category_name,
			COUNT(p.id) as product_count,
			COALESCE(SUM(i.quantity), 0) as total_units,
			COALESCE(SUM(i.quantity * p.unit_price), 0) as total_value
		FROM categories c
		LEFT JOIN products p ON c.id = p.category_id AND p.deleted_at IS NULL
		LEFT JOIN inventory i ON p.id = i.product_id AND i.deleted_at IS NULL
		WHERE c.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_value DESC
	`).Scan(&results).Error
	return results, err
}

func (r *inventoryRepo) BySupplier() ([]SupplierStock, error) {
	var results []SupplierStock
	err := r.db.Raw(`
		SELECT
			s.id as supplier_id,
			s.company_name,
			COUNT(p.id) as product_count,
			COALESCE(SUM(i.quantity), 0) as total_units,
			COALESCE(SUM(i.quantity * p.unit_price), 0) as total_value
		FROM suppliers s
		LEFT JOIN products p ON s.id = p.supplier_id AND p.deleted_at IS NULL
		LEFT JOIN inventory i ON p.id = i.product_id AND i.deleted_at IS NULL
		WHERE s.deleted_at IS NULL
		GROUP BY s.id, s.company_name
		ORDER BY total_value DESC
	`).Scan(&results).Error
	return results, err
}
