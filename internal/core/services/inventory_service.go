package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

// inventoryService provides inventory item and stock movement operations.
type inventoryService struct {
	repo portsrepo.InventoryRepository
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo portsrepo.InventoryRepository) portssvc.InventorySvcFacade {
	return &inventoryService{repo: repo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateItem creates a new inventory item record.
func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	item := domain.InventoryItem{
		ItemID:           uuid.NewString(),
		ItemType:         req.ItemType,
		Color:            req.Color,
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		Price:            req.Price,
		Location:         req.Location,
		Supplier:         req.Supplier,
		MinimumThreshold: req.MinimumThreshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.User,
			LastUpdatedAt: now,
			LastUpdatedBy: req.User,
		},
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.repo.SaveItem(ctx, item); err != nil {
		logger.Error("Failed to save inventory item", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save inventory item: %w", err)
	}

	logger.Info("Inventory item created", slog.String("item_id", item.ItemID), slog.String("item_type", item.ItemType))
	return &item, nil
}

// GetItemByID retrieves a single inventory item.
func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

// ListItems lists inventory items, optionally filtered to low-stock items.
func (s *inventoryService) ListItems(ctx context.Context, params dto.ListInventoryParams) ([]domain.InventoryItem, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	items, err := s.repo.ListItems(ctx, limit, params.Offset, params.LowStock)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list inventory items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

// UpdateItem edits the non-quantity fields of an item. Quantity never changes
// here; movements are the only path that touches it.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.ItemType != nil {
		item.ItemType = *req.ItemType
		updated = true
	}
	if req.Color != nil {
		item.Color = *req.Color
		updated = true
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
		updated = true
	}
	if req.Price != nil {
		item.Price = *req.Price
		updated = true
	}
	if req.Location != nil {
		item.Location = *req.Location
		updated = true
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
		updated = true
	}
	if req.MinimumThreshold != nil {
		item.MinimumThreshold = *req.MinimumThreshold
		updated = true
	}
	if !updated {
		return item, nil
	}

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	item.LastUpdatedAt = now
	item.LastUpdatedBy = req.User

	if err := s.repo.UpdateItem(ctx, *item); err != nil {
		logger.Error("Failed to update inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}

	logger.Info("Inventory item updated", slog.String("item_id", itemID))
	return item, nil
}

// DeleteItem soft-deletes an item; its movement history is retained.
func (s *inventoryService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if err := s.repo.SoftDeleteItem(ctx, itemID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return err
	}

	logger.Info("Inventory item soft-deleted", slog.String("item_id", itemID))
	return nil
}

// ApplyMovement runs the stock ledger against one item. The row is locked and
// re-read inside the store transaction, so the computation always sees the
// latest persisted quantity and the item update and movement insert land
// both-or-neither.
func (s *inventoryService) ApplyMovement(ctx context.Context, itemID string, req dto.ApplyMovementRequest) (*domain.InventoryItem, *domain.StockMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	op, err := domain.ParseMovementType(req.Operation)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	var updatedItem domain.InventoryItem
	var movement domain.StockMovement
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx portsrepo.InventoryTxRepository) error {
		item, err := tx.FindItemForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		updated, m, err := ledger.ApplyMovement(*item, op, req.Quantity, ledger.MovementContext{
			User:  req.User,
			Date:  date,
			Notes: req.Notes,
			Now:   now,
		})
		if err != nil {
			return err
		}
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = req.User

		if err := tx.UpdateItemQuantity(ctx, updated); err != nil {
			return fmt.Errorf("failed to update item quantity: %w", err)
		}
		if err := tx.InsertMovement(ctx, m); err != nil {
			return fmt.Errorf("failed to insert stock movement: %w", err)
		}

		updatedItem = updated
		movement = m
		return nil
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientStock) || errors.Is(err, ledger.ErrInvalidQuantity) {
			logger.Warn("Stock movement rejected", slog.String("item_id", itemID), slog.String("error", err.Error()))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply stock movement", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, nil, err
	}

	logger.Info("Stock movement applied",
		slog.String("item_id", itemID),
		slog.String("movement_id", movement.MovementID),
		slog.String("operation", string(op)),
		slog.Float64("quantity", movement.Quantity),
		slog.Float64("new_quantity", movement.NewQuantity),
	)
	return &updatedItem, &movement, nil
}

// ListMovements returns the movement history of one item, newest first.
func (s *inventoryService) ListMovements(ctx context.Context, itemID string, params dto.ListMovementsParams) ([]domain.StockMovement, error) {
	if _, err := s.repo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	movements, err := s.repo.ListMovementsByItem(ctx, itemID, limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list stock movements", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, nil
}

// PurgeDeleted physically removes soft-deleted items and their histories.
func (s *inventoryService) PurgeDeleted(ctx context.Context) (int64, error) {
	purged, err := s.repo.PurgeDeletedItems(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to purge deleted inventory items", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to purge deleted inventory items: %w", err)
	}
	return purged, nil
}
