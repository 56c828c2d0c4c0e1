package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// MovementContext carries the caller-supplied metadata for a stock movement.
// Now is the injected clock; Date falls back to Now when zero.
type MovementContext struct {
	User  string
	Date  time.Time
	Notes string
	Now   time.Time
}

// ApplyMovement validates and applies one inbound/outbound quantity movement
// against an inventory item. It returns the updated item and the immutable
// movement record; the two must be persisted together as one unit. The input
// item is never modified, so a failed call leaves the caller's state intact.
func ApplyMovement(item domain.InventoryItem, op domain.MovementType, quantity float64, mctx MovementContext) (domain.InventoryItem, domain.StockMovement, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return domain.InventoryItem{}, domain.StockMovement{}, fmt.Errorf("%w: got %v", ErrInvalidQuantity, quantity)
	}
	if op != domain.MovementIn && op != domain.MovementOut {
		return domain.InventoryItem{}, domain.StockMovement{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidQuantity, op)
	}

	previous := item.Quantity
	var newQuantity float64
	switch op {
	case domain.MovementIn:
		newQuantity = previous + quantity
	case domain.MovementOut:
		if quantity > previous {
			return domain.InventoryItem{}, domain.StockMovement{}, fmt.Errorf(
				"%w: requested %v, available %v", ErrInsufficientStock, quantity, previous)
		}
		newQuantity = previous - quantity
	}

	date := mctx.Date
	if date.IsZero() {
		date = mctx.Now
	}

	movement := domain.StockMovement{
		MovementID:       uuid.NewString(),
		ItemID:           item.ItemID,
		Operation:        op,
		Quantity:         quantity,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		User:             mctx.User,
		Date:             date,
		Notes:            mctx.Notes,
		CreatedAt:        mctx.Now,
	}

	updated := item
	updated.Quantity = newQuantity
	return updated, movement, nil
}
