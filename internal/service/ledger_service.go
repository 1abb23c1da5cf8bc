package service

import (
	"context"
	"fmt"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"

	"github.com/google/uuid"
)

// MovementResult is the state returned after a successful stock movement.
type MovementResult struct {
	Transaction    *model.Transaction `json:"transaction"`
	RemainingStock int                `json:"remaining_stock"`
}

// LedgerService owns the invariant that on-hand stock never goes negative and
// that every mutation appends exactly one transaction record. The read-check-
// write sequence for each movement runs inside the store's per-product atomic
// unit, so concurrent movements on the same product are serialized.
type LedgerService interface {
	StockIn(ctx context.Context, productID uuid.UUID, quantity int, referenceNumber, remarks, actor string) (*MovementResult, error)
	StockOut(ctx context.Context, productID uuid.UUID, quantity int, referenceNumber, remarks, actor string) (*MovementResult, error)
	Adjust(ctx context.Context, productID uuid.UUID, newQuantity int, remarks, actor string) (*MovementResult, error)
}

type ledgerService struct {
	store repository.LedgerStore
	wsHub *ws.Hub
}

func NewLedgerService(store repository.LedgerStore, hub *ws.Hub) LedgerService {
	return &ledgerService{store: store, wsHub: hub}
}

func (s *ledgerService) StockIn(ctx context.Context, productID uuid.UUID, quantity int, referenceNumber, remarks, actor string) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidArgument("quantity must be greater than zero")
	}

	var result MovementResult
	err := s.store.Mutate(ctx, productID, func(inv *model.Inventory) (*model.Transaction, error) {
		inv.Quantity += quantity

		txn := &model.Transaction{
			ProductID:       productID,
			Type:            model.TxIn,
			Quantity:        quantity,
			Delta:           quantity,
			ReferenceNumber: referenceNumber,
			Remarks:         remarks,
		}
		txn.CreatedBy = actor
		txn.UpdatedBy = actor

		result.Transaction = txn
		result.RemainingStock = inv.Quantity
		return txn, nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("stock_in", &result, actor)
	return &result, nil
}

func (s *ledgerService) StockOut(ctx context.Context, productID uuid.UUID, quantity int, referenceNumber, remarks, actor string) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, apperr.InvalidArgument("quantity must be greater than zero")
	}

	var result MovementResult
	err := s.store.Mutate(ctx, productID, func(inv *model.Inventory) (*model.Transaction, error) {
		if quantity > inv.Quantity {
			return nil, apperr.InsufficientStock(
				fmt.Sprintf("insufficient stock: requested %d, available %d", quantity, inv.Quantity))
		}
		inv.Quantity -= quantity

		txn := &model.Transaction{
			ProductID:       productID,
			Type:            model.TxOut,
			Quantity:        quantity,
			Delta:           -quantity,
			ReferenceNumber: referenceNumber,
			Remarks:         remarks,
		}
		txn.CreatedBy = actor
		txn.UpdatedBy = actor

		result.Transaction = txn
		result.RemainingStock = inv.Quantity
		return txn, nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("stock_out", &result, actor)
	return &result, nil
}

func (s *ledgerService) Adjust(ctx context.Context, productID uuid.UUID, newQuantity int, remarks, actor string) (*MovementResult, error) {
	if newQuantity < 0 {
		return nil, apperr.InvalidArgument("quantity cannot be negative")
	}

	var result MovementResult
	err := s.store.Mutate(ctx, productID, func(inv *model.Inventory) (*model.Transaction, error) {
		delta := newQuantity - inv.Quantity
		inv.Quantity = newQuantity

		txn := &model.Transaction{
			ProductID: productID,
			Type:      model.TxAdjustment,
			Quantity:  abs(delta),
			Delta:     delta,
			Remarks:   remarks,
		}
		txn.CreatedBy = actor
		txn.UpdatedBy = actor

		result.Transaction = txn
		result.RemainingStock = inv.Quantity
		return txn, nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("stock_adjusted", &result, actor)
	return &result, nil
}

// broadcast pushes the movement to connected clients. Fire and forget, never
// blocks the caller's request.
func (s *ledgerService) broadcast(action string, result *MovementResult, actor string) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"transaction": map[string]interface{}{
			"id":         result.Transaction.ID,
			"product_id": result.Transaction.ProductID,
			"tx_type":    result.Transaction.Type,
			"quantity":   result.Transaction.Quantity,
			"delta":      result.Transaction.Delta,
			"new_stock":  result.RemainingStock,
		},
		"actor": actor,
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
