package service

import (
	"errors"
	"fmt"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(req *model.Product, warehouseLocation, actor string) (*model.Product, error)
	Update(id uuid.UUID, req *model.Product, actor string) (*model.Product, error)
	Delete(id uuid.UUID) error
	List(filter repository.ProductFilter) ([]model.Product, repository.Pagination, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	LowStock(threshold *int) ([]model.Product, error)
}

type productService struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	supplierRepo    repository.SupplierRepository
	transactionRepo repository.TransactionRepository
}

func NewProductService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	sRepo repository.SupplierRepository,
	tRepo repository.TransactionRepository,
) ProductService {
	return &productService{
		productRepo:     pRepo,
		categoryRepo:    cRepo,
		supplierRepo:    sRepo,
		transactionRepo: tRepo,
	}
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return apperr.InvalidArgument(
		fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag))
}

// Create validates the product, checks SKU uniqueness and reference
// dimensions, then inserts it together with a zero-quantity inventory row.
func (s *productService) Create(req *model.Product, warehouseLocation, actor string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	exists, err := s.productRepo.SKUExists(req.SKU, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("SKU already exists")
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("supplier not found")
		}
		return nil, err
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor

	inventory := &model.Inventory{WarehouseLocation: warehouseLocation}
	inventory.CreatedBy = actor
	inventory.UpdatedBy = actor
	if inventory.WarehouseLocation == "" {
		inventory.WarehouseLocation = "N/A"
	}

	if err := s.productRepo.Create(req, inventory); err != nil {
		return nil, err
	}
	req.Inventory = inventory
	return req, nil
}

func (s *productService) Update(id uuid.UUID, req *model.Product, actor string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}

	dup, err := s.productRepo.SKUExists(req.SKU, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperr.Conflict("SKU already exists")
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("supplier not found")
		}
		return nil, err
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.SupplierID = req.SupplierID
	existing.UnitPrice = req.UnitPrice
	existing.ReorderLevel = req.ReorderLevel
	existing.UpdatedBy = actor
	// Drop preloaded associations so Save only writes the product row;
	// stock is only mutated through the ledger.
	existing.Category = nil
	existing.Supplier = nil
	existing.Inventory = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(id)
}

// Delete removes a product and its inventory record. Blocked while any
// transaction references the product; a posted ledger entry makes the
// product permanently non-deletable.
func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return err
	}

	count, err := s.transactionRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("cannot delete product with existing transactions")
	}

	return s.productRepo.Delete(id)
}

func (s *productService) List(filter repository.ProductFilter) ([]model.Product, repository.Pagination, error) {
	return s.productRepo.List(filter)
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) LowStock(threshold *int) ([]model.Product, error) {
	if threshold != nil && *threshold < 0 {
		return nil, apperr.InvalidArgument("threshold cannot be negative")
	}
	return s.productRepo.LowStock(threshold)
}
