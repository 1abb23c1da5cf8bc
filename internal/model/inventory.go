package model

import "github.com/google/uuid"

// Inventory holds the current on-hand quantity for a product.
// One row per product, created at quantity 0 together with the product.
// Quantity is only ever mutated through the stock ledger, which keeps it
// consistent with the sum of transaction deltas and never lets it go negative.
type Inventory struct {
	BaseModel
	ProductID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Quantity          int       `gorm:"not null;default:0" json:"quantity"`
	WarehouseLocation string    `gorm:"type:varchar(100)" json:"warehouse_location"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Inventory) TableName() string {
	return "inventory"
}
