package service

import (
	"testing"
	"time"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProductRepo keeps products and their inventory rows in memory and
// records exactly what the service hands it.
type fakeProductRepo struct {
	products    map[uuid.UUID]*model.Product
	inventories map[uuid.UUID]*model.Inventory
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:    make(map[uuid.UUID]*model.Product),
		inventories: make(map[uuid.UUID]*model.Inventory),
	}
}

func (f *fakeProductRepo) Create(product *model.Product, inventory *model.Inventory) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	inventory.ProductID = product.ID
	f.products[product.ID] = product
	f.inventories[product.ID] = inventory
	return nil
}

func (f *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) SKUExists(sku string, excludeID uuid.UUID) (bool, error) {
	for id, p := range f.products {
		if p.SKU == sku && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Update(product *model.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(f.products, id)
	delete(f.inventories, id)
	return nil
}

func (f *fakeProductRepo) List(repository.ProductFilter) ([]model.Product, repository.Pagination, error) {
	return nil, repository.Pagination{}, nil
}
func (f *fakeProductRepo) LowStock(*int) ([]model.Product, error)            { return nil, nil }
func (f *fakeProductRepo) CountByCategory(uuid.UUID) (int64, error)          { return 0, nil }
func (f *fakeProductRepo) CountBySupplier(uuid.UUID) (int64, error)          { return 0, nil }
func (f *fakeProductRepo) FindBySupplier(uuid.UUID) ([]model.Product, error) { return nil, nil }

// fakeCategoryRepo resolves a single known category id.
type fakeCategoryRepo struct {
	knownID uuid.UUID
}

func (f *fakeCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	if id == f.knownID {
		return &model.Category{Name: "Electronics"}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) FindAll() ([]model.CategoryWithCount, error) { return nil, nil }
func (f *fakeCategoryRepo) NameExists(string, uuid.UUID) (bool, error)  { return false, nil }
func (f *fakeCategoryRepo) Create(*model.Category) error                { return nil }
func (f *fakeCategoryRepo) Update(*model.Category) error                { return nil }
func (f *fakeCategoryRepo) Delete(uuid.UUID) error                      { return nil }

// fakeSupplierRepo resolves a single known supplier id.
type fakeSupplierRepo struct {
	knownID uuid.UUID
}

func (f *fakeSupplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	if id == f.knownID {
		return &model.Supplier{CompanyName: "Acme"}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSupplierRepo) List(string, int, int) ([]model.Supplier, repository.Pagination, error) {
	return nil, repository.Pagination{}, nil
}
func (f *fakeSupplierRepo) Create(*model.Supplier) error { return nil }
func (f *fakeSupplierRepo) Update(*model.Supplier) error { return nil }
func (f *fakeSupplierRepo) Delete(uuid.UUID) error       { return nil }

// fakeTxRepo reports a fixed transaction count per product.
type fakeTxRepo struct {
	counts map[uuid.UUID]int64
}

func (f *fakeTxRepo) CountByProduct(id uuid.UUID) (int64, error) { return f.counts[id], nil }
func (f *fakeTxRepo) List(repository.TransactionFilter) ([]model.Transaction, repository.Pagination, error) {
	return nil, repository.Pagination{}, nil
}
func (f *fakeTxRepo) FindByID(uuid.UUID) (*model.Transaction, error) { return nil, nil }
func (f *fakeTxRepo) HistoryByProduct(uuid.UUID, *time.Time, *time.Time) ([]model.Transaction, error) {
	return nil, nil
}
func (f *fakeTxRepo) Summary(*time.Time, *time.Time) ([]repository.TransactionSummary, error) {
	return nil, nil
}
func (f *fakeTxRepo) Recent(int) ([]model.Transaction, error) { return nil, nil }

type productFixture struct {
	service     ProductService
	productRepo *fakeProductRepo
	txRepo      *fakeTxRepo
	categoryID  uuid.UUID
	supplierID  uuid.UUID
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	f := &productFixture{
		productRepo: newFakeProductRepo(),
		txRepo:      &fakeTxRepo{counts: make(map[uuid.UUID]int64)},
		categoryID:  uuid.New(),
		supplierID:  uuid.New(),
	}
	f.service = NewProductService(
		f.productRepo,
		&fakeCategoryRepo{knownID: f.categoryID},
		&fakeSupplierRepo{knownID: f.supplierID},
		f.txRepo,
	)
	return f
}

func (f *productFixture) validProduct(sku string) *model.Product {
	return &model.Product{
		SKU:        sku,
		Name:       "Widget",
		CategoryID: f.categoryID,
		SupplierID: f.supplierID,
		UnitPrice:  decimal.NewFromFloat(9.99),
	}
}

func TestProductCreate_CreatesExactlyOneZeroInventory(t *testing.T) {
	f := newProductFixture(t)

	created, err := f.service.Create(f.validProduct("SKU-001"), "A-01", "alice")
	require.NoError(t, err)

	require.NotNil(t, created.Inventory)
	assert.Equal(t, 0, created.Inventory.Quantity)
	assert.Equal(t, created.ID, created.Inventory.ProductID)
	assert.Equal(t, "A-01", created.Inventory.WarehouseLocation)

	require.Len(t, f.productRepo.inventories, 1)
	assert.Equal(t, 0, f.productRepo.inventories[created.ID].Quantity)
}

func TestProductCreate_DuplicateSKU(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.service.Create(f.validProduct("SKU-001"), "", "alice")
	require.NoError(t, err)

	_, err = f.service.Create(f.validProduct("SKU-001"), "", "alice")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Len(t, f.productRepo.inventories, 1)
}

func TestProductCreate_UnknownReferences(t *testing.T) {
	f := newProductFixture(t)

	bad := f.validProduct("SKU-002")
	bad.CategoryID = uuid.New()
	_, err := f.service.Create(bad, "", "alice")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	bad = f.validProduct("SKU-002")
	bad.SupplierID = uuid.New()
	_, err = f.service.Create(bad, "", "alice")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	assert.Empty(t, f.productRepo.inventories)
}

func TestProductDelete_BlockedWhileTransactionsExist(t *testing.T) {
	f := newProductFixture(t)

	created, err := f.service.Create(f.validProduct("SKU-003"), "", "alice")
	require.NoError(t, err)
	f.txRepo.counts[created.ID] = 1

	err = f.service.Delete(created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	_, found := f.productRepo.products[created.ID]
	assert.True(t, found, "blocked delete must leave the product in place")
	_, found = f.productRepo.inventories[created.ID]
	assert.True(t, found)
}

func TestProductDelete_WithoutTransactionsRemovesInventory(t *testing.T) {
	f := newProductFixture(t)

	created, err := f.service.Create(f.validProduct("SKU-004"), "", "alice")
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(created.ID))
	assert.Empty(t, f.productRepo.products)
	assert.Empty(t, f.productRepo.inventories)
}

func TestProductDelete_UnknownProduct(t *testing.T) {
	f := newProductFixture(t)

	err := f.service.Delete(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
