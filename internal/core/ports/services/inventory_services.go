package services

import (
	"context"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/dto"
)

// InventorySvcFacade defines the operations offered by the inventory service.
type InventorySvcFacade interface {
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, params dto.ListInventoryParams) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string, userID string) error

	// ApplyMovement runs the stock ledger against one item and persists the
	// updated item and movement record atomically.
	ApplyMovement(ctx context.Context, itemID string, req dto.ApplyMovementRequest) (*domain.InventoryItem, *domain.StockMovement, error)
	ListMovements(ctx context.Context, itemID string, params dto.ListMovementsParams) ([]domain.StockMovement, error)

	PurgeDeleted(ctx context.Context) (int64, error)
}
