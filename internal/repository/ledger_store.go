package repository

import (
	"context"
	"errors"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MutateFunc applies a stock movement to the locked inventory row. It mutates
// inv.Quantity and returns the transaction record to append, or a business
// error that aborts the whole unit.
type MutateFunc func(inv *model.Inventory) (*model.Transaction, error)

// LedgerStore serializes stock mutations per product and keeps the quantity
// update and transaction insert in one atomic unit: either both apply or
// neither does.
type LedgerStore interface {
	Mutate(ctx context.Context, productID uuid.UUID, fn MutateFunc) error
}

type ledgerStore struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewLedgerStore(db *gorm.DB, log *logrus.Logger) LedgerStore {
	return &ledgerStore{db: db, log: log}
}

// Mutate runs the atomic unit, retrying once on storage-layer failures.
// Business errors surface verbatim and are never retried.
func (s *ledgerStore) Mutate(ctx context.Context, productID uuid.UUID, fn MutateFunc) error {
	return withRetry(ctx, func() error {
		err := s.mutateOnce(ctx, productID, fn)
		if err != nil && !apperr.IsBusiness(err) {
			s.log.WithError(err).WithField("product_id", productID).
				Warn("stock mutation attempt failed")
		}
		return err
	})
}

// withRetry runs attempt, retrying exactly once on storage-layer failures.
// Business errors and context expiry surface immediately; a second storage
// failure is wrapped as StorageUnavailable.
func withRetry(ctx context.Context, attempt func() error) error {
	err := attempt()
	if err == nil || apperr.IsBusiness(err) {
		return err
	}
	if ctx.Err() != nil {
		return apperr.StorageUnavailable(err)
	}
	if err = attempt(); err == nil || apperr.IsBusiness(err) {
		return err
	}
	return apperr.StorageUnavailable(err)
}

func (s *ledgerStore) mutateOnce(ctx context.Context, productID uuid.UUID, fn MutateFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv model.Inventory
		// Row lock serializes concurrent movements on the same product;
		// movements on other products are unaffected.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv, "product_id = ?", productID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("product not found")
			}
			return err
		}

		txn, err := fn(&inv)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Inventory{}).
			Where("id = ?", inv.ID).
			Updates(map[string]interface{}{
				"quantity":   inv.Quantity,
				"updated_by": txn.CreatedBy,
			}).Error; err != nil {
			return err
		}

		return tx.Create(txn).Error
	})
}
