package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates the direction of a stock movement.
type MovementType string

const (
	// MovementIn is an inbound movement that increases item quantity.
	MovementIn MovementType = "in"
	// MovementOut is an outbound movement that decreases item quantity.
	MovementOut MovementType = "out"
)

// ParseMovementType validates a raw operation string.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementIn:
		return MovementIn, nil
	case MovementOut:
		return MovementOut, nil
	default:
		return "", fmt.Errorf("unknown movement operation %q", s)
	}
}

// InventoryItem represents one stock-keeping record (a fabric type/color in a unit).
// Quantity is only ever changed through the stock ledger; all other fields may be
// edited directly.
type InventoryItem struct {
	ItemID           string          `json:"id"`
	ItemType         string          `json:"type"`
	Color            string          `json:"color"`
	Quantity         float64         `json:"quantity"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	Location         string          `json:"location"`
	Supplier         string          `json:"supplier"`
	MinimumThreshold float64         `json:"minimumThreshold"`
	IsDeleted        bool            `json:"isDeleted"`
	AuditFields
}

// IsLowStock reports whether the item is at or below its minimum threshold.
// Items without a configured threshold are never low.
func (i InventoryItem) IsLowStock() bool {
	return i.MinimumThreshold > 0 && i.Quantity <= i.MinimumThreshold
}

// Validate checks invariants on the item record itself.
func (i InventoryItem) Validate() error {
	if i.ItemType == "" {
		return fmt.Errorf("item type is required")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("item quantity must not be negative")
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("item price must not be negative")
	}
	return nil
}

// StockMovement is the immutable audit record of one quantity change.
// Movements are appended once and never edited or deleted.
type StockMovement struct {
	MovementID       string       `json:"id"`
	ItemID           string       `json:"itemId"`
	Operation        MovementType `json:"operation"`
	Quantity         float64      `json:"quantity"`
	PreviousQuantity float64      `json:"previousQuantity"`
	NewQuantity      float64      `json:"newQuantity"`
	User             string       `json:"user"`
	Date             time.Time    `json:"date"`
	Notes            string       `json:"notes"`
	CreatedAt        time.Time    `json:"createdAt"`
}
