package repositories

import (
	"context"
	"time"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// InventoryTxRepository exposes the operations available inside one store
// transaction. The updated item and its movement record are persisted through
// the same transaction so the pair lands both-or-neither.
type InventoryTxRepository interface {
	// FindItemForUpdate reads an item and locks its row for the duration of
	// the transaction, so concurrent movements against the same item serialize.
	FindItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	UpdateItemQuantity(ctx context.Context, item domain.InventoryItem) error
	InsertMovement(ctx context.Context, movement domain.StockMovement) error
}

// InventoryRepository is the record store for inventory items and their
// movement history.
type InventoryRepository interface {
	SaveItem(ctx context.Context, item domain.InventoryItem) error
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, limit int, offset int, lowStockOnly bool) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	SoftDeleteItem(ctx context.Context, itemID string, userID string, now time.Time) error
	ListMovementsByItem(ctx context.Context, itemID string, limit int, offset int) ([]domain.StockMovement, error)
	PurgeDeletedItems(ctx context.Context) (int64, error)

	// WithTx runs fn within one store transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx InventoryTxRepository) error) error
}
