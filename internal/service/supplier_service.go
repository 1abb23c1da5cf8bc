package service

import (
	"errors"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	List(search string, page, perPage int) ([]model.Supplier, repository.Pagination, error)
	GetByID(id uuid.UUID) (*model.Supplier, error)
	Create(req *model.Supplier, actor string) (*model.Supplier, error)
	Update(id uuid.UUID, req *model.Supplier, actor string) (*model.Supplier, error)
	Delete(id uuid.UUID) error
	Products(id uuid.UUID) ([]model.Product, error)
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

func NewSupplierService(sRepo repository.SupplierRepository, pRepo repository.ProductRepository) SupplierService {
	return &supplierService{supplierRepo: sRepo, productRepo: pRepo}
}

func (s *supplierService) List(search string, page, perPage int) ([]model.Supplier, repository.Pagination, error) {
	return s.supplierRepo.List(search, page, perPage)
}

func (s *supplierService) GetByID(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("supplier not found")
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Create(req *model.Supplier, actor string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.supplierRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *supplierService) Update(id uuid.UUID, req *model.Supplier, actor string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.CompanyName = req.CompanyName
	existing.ContactPerson = req.ContactPerson
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Address = req.Address
	existing.City = req.City
	existing.State = req.State
	existing.PostalCode = req.PostalCode
	existing.UpdatedBy = actor
	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete is blocked while any product references the supplier.
func (s *supplierService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	count, err := s.productRepo.CountBySupplier(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("cannot delete supplier with existing products")
	}

	return s.supplierRepo.Delete(id)
}

func (s *supplierService) Products(id uuid.UUID) ([]model.Product, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	return s.productRepo.FindBySupplier(id)
}
