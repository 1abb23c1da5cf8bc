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

type CategoryService interface {
	List() ([]model.CategoryWithCount, error)
	GetByID(id uuid.UUID) (*model.Category, error)
	Create(req *model.Category, actor string) (*model.Category, error)
	Update(id uuid.UUID, req *model.Category, actor string) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository) CategoryService {
	return &categoryService{categoryRepo: cRepo, productRepo: pRepo}
}

func (s *categoryService) List() ([]model.CategoryWithCount, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(req *model.Category, actor string) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	exists, err := s.categoryRepo.NameExists(req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("category name already exists")
	}

	req.CreatedBy = actor
	req.UpdatedBy = actor
	if err := s.categoryRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *categoryService) Update(id uuid.UUID, req *model.Category, actor string) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	dup, err := s.categoryRepo.NameExists(req.Name, id)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperr.Conflict("category name already exists")
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedBy = actor
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete is blocked while any product references the category.
func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("cannot delete category with existing products")
	}

	return s.categoryRepo.Delete(id)
}
