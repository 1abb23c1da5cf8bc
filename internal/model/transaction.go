package model

import "github.com/google/uuid"

type TransactionType string

const (
	TxIn         TransactionType = "IN"
	TxOut        TransactionType = "OUT"
	TxAdjustment TransactionType = "ADJUSTMENT"
)

// Transaction is an append-only stock movement record. Rows are never
// updated or deleted once written; the inventory quantity is always the
// sum of the deltas for that product.
type Transaction struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Type      TransactionType `gorm:"type:varchar(12);not null" json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"gte=0"` // abs(Delta); zero only for a no-op adjustment
	// Signed change applied to on-hand stock: +Quantity for IN, -Quantity for
	// OUT, newQuantity-oldQuantity for ADJUSTMENT (may be zero).
	Delta           int    `gorm:"not null" json:"delta"`
	ReferenceNumber string `gorm:"type:varchar(100)" json:"reference_number"`
	Remarks         string `gorm:"type:text" json:"remarks"`
}
