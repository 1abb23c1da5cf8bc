package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows the product listing. Zero values mean "no filter".
type ProductFilter struct {
	Search     string
	CategoryID uuid.UUID
	SupplierID uuid.UUID
	Page       int
	PerPage    int
}

type ProductRepository interface {
	Create(product *model.Product, inventory *model.Inventory) error
	List(filter ProductFilter) ([]model.Product, Pagination, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	SKUExists(sku string, excludeID uuid.UUID) (bool, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	LowStock(threshold *int) ([]model.Product, error)
	CountByCategory(categoryID uuid.UUID) (int64, error)
	CountBySupplier(supplierID uuid.UUID) (int64, error)
	FindBySupplier(supplierID uuid.UUID) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// Create inserts the product together with its zero-quantity inventory row.
func (r *productRepo) Create(product *model.Product, inventory *model.Inventory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		inventory.ProductID = product.ID
		inventory.Quantity = 0
		return tx.Create(inventory).Error
	})
}

func (r *productRepo) List(filter ProductFilter) ([]model.Product, Pagination, error) {
	q := r.db.Model(&model.Product{})

	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ?", term, term)
	}
	if filter.CategoryID != uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SupplierID != uuid.Nil {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	page := NewPagination(filter.Page, filter.PerPage, total)

	var products []model.Product
	err := q.Preload("Category").Preload("Supplier").Preload("Inventory").
		Order("created_at DESC").
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&products).Error
	return products, page, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").Preload("Inventory").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SKUExists checks uniqueness, optionally excluding one product (for updates).
func (r *productRepo) SKUExists(sku string, excludeID uuid.UUID) (bool, error) {
	q := r.db.Model(&model.Product{}).Where("sku = ?", sku)
	if excludeID != uuid.Nil {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// Delete removes the product and its inventory row together. The service
// layer has already verified no transactions reference the product.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Inventory{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}

// LowStock lists products at or below their reorder level, or at or below the
// caller-supplied threshold when one is given. Lowest stock first.
func (r *productRepo) LowStock(threshold *int) ([]model.Product, error) {
	q := r.db.Model(&model.Product{}).
		Joins("JOIN inventory ON inventory.product_id = products.id AND inventory.deleted_at IS NULL").
		Preload("Category").Preload("Supplier").Preload("Inventory").
		Order("inventory.quantity ASC")

	if threshold != nil {
		q = q.Where("inventory.quantity <= ?", *threshold)
	} else {
		q = q.Where("inventory.quantity <= products.reorder_level")
	}

	var products []model.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *productRepo) CountBySupplier(supplierID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("supplier_id = ?", supplierID).Count(&count).Error
	return count, err
}

func (r *productRepo) FindBySupplier(supplierID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Preload("Inventory").
		Where("supplier_id = ?", supplierID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}
