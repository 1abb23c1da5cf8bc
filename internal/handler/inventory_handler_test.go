package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInventoryRepo records location updates and can be made to fail them.
type fakeInventoryRepo struct {
	locationErr     error
	locationUpdates []string
}

func (f *fakeInventoryRepo) UpdateLocation(_ uuid.UUID, location, _ string) error {
	if f.locationErr != nil {
		return f.locationErr
	}
	f.locationUpdates = append(f.locationUpdates, location)
	return nil
}

func (f *fakeInventoryRepo) List(string, int, int) ([]model.Inventory, repository.Pagination, error) {
	return nil, repository.Pagination{}, nil
}
func (f *fakeInventoryRepo) FindByProductID(uuid.UUID) (*model.Inventory, error) { return nil, nil }
func (f *fakeInventoryRepo) StockSummary() (*repository.StockSummary, error)     { return nil, nil }
func (f *fakeInventoryRepo) ByCategory() ([]repository.CategoryStock, error)     { return nil, nil }
func (f *fakeInventoryRepo) BySupplier() ([]repository.SupplierStock, error)     { return nil, nil }

func putJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp, decodeBody(t, resp)
}

func newInventoryApp(ledger service.LedgerService, repo repository.InventoryRepository) *fiber.App {
	app := fiber.New()
	h := NewInventoryHandler(&stubQuery{}, ledger, repo)
	app.Put("/inventory/:productId", h.Update)
	return app
}

func TestInventoryUpdate_AdjustsAndSetsLocation(t *testing.T) {
	adjusted := 0
	ledger := &fakeLedger{
		adjustFn: func(id uuid.UUID, newQty int) (*service.MovementResult, error) {
			adjusted++
			assert.Equal(t, 30, newQty)
			return &service.MovementResult{
				Transaction:    &model.Transaction{ProductID: id, Type: model.TxAdjustment},
				RemainingStock: newQty,
			}, nil
		},
	}
	repo := &fakeInventoryRepo{}
	app := newInventoryApp(ledger, repo)

	resp, payload := putJSON(t, app, "/inventory/"+uuid.NewString(), fiber.Map{
		"quantity": 30, "warehouse_location": "B-12",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, 1, adjusted)
	assert.Equal(t, []string{"B-12"}, repo.locationUpdates)
}

// A failed location write must not leave a posted adjustment behind.
func TestInventoryUpdate_LocationFailureSkipsLedger(t *testing.T) {
	adjusted := 0
	ledger := &fakeLedger{
		adjustFn: func(uuid.UUID, int) (*service.MovementResult, error) {
			adjusted++
			return &service.MovementResult{Transaction: &model.Transaction{}}, nil
		},
	}
	repo := &fakeInventoryRepo{locationErr: errors.New("connection reset")}
	app := newInventoryApp(ledger, repo)

	resp, payload := putJSON(t, app, "/inventory/"+uuid.NewString(), fiber.Map{
		"quantity": 30, "warehouse_location": "B-12",
	})

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, 0, adjusted, "nothing may post to the ledger when the location update fails")
}

func TestInventoryUpdate_RejectsNegativeQuantity(t *testing.T) {
	adjusted := 0
	ledger := &fakeLedger{
		adjustFn: func(uuid.UUID, int) (*service.MovementResult, error) {
			adjusted++
			return &service.MovementResult{Transaction: &model.Transaction{}}, nil
		},
	}
	repo := &fakeInventoryRepo{}
	app := newInventoryApp(ledger, repo)

	resp, payload := putJSON(t, app, "/inventory/"+uuid.NewString(), fiber.Map{
		"quantity": -1, "warehouse_location": "B-12",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "negative")
	assert.Equal(t, 0, adjusted)
	assert.Empty(t, repo.locationUpdates)
}

func TestInventoryUpdate_RequiresQuantity(t *testing.T) {
	app := newInventoryApp(&fakeLedger{}, &fakeInventoryRepo{})

	resp, payload := putJSON(t, app, "/inventory/"+uuid.NewString(), fiber.Map{
		"warehouse_location": "B-12",
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "quantity")
}
