package repository

import (
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	List(search string, page, perPage int) ([]model.Supplier, Pagination, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	Create(supplier *model.Supplier) error
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) List(search string, page, perPage int) ([]model.Supplier, Pagination, error) {
	q := r.db.Model(&model.Supplier{})

	if search != "" {
		term := "%" + search + "%"
		q = q.Where("company_name ILIKE ? OR contact_person ILIKE ? OR city ILIKE ?", term, term, term)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	pg := NewPagination(page, perPage, total)

	var suppliers []model.Supplier
	err := q.Order("created_at DESC").
		Limit(pg.PerPage).Offset(pg.Offset()).
		Find(&suppliers).Error
	return suppliers, pg, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}
