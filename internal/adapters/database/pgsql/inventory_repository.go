package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
)

const inventoryItemColumns = `item_id, item_type, color, quantity, unit, price, location, supplier, minimum_threshold, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxInventoryRepository creates a new repository for inventory items and stock movements.
func NewPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{pool: pool}
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := row.Scan(
		&item.ItemID,
		&item.ItemType,
		&item.Color,
		&item.Quantity,
		&item.Unit,
		&item.Price,
		&item.Location,
		&item.Supplier,
		&item.MinimumThreshold,
		&item.IsDeleted,
		&item.CreatedAt,
		&item.CreatedBy,
		&item.LastUpdatedAt,
		&item.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SaveItem inserts a new inventory item.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + inventoryItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.ItemType,
		item.Color,
		item.Quantity,
		item.Unit,
		item.Price,
		item.Location,
		item.Supplier,
		item.MinimumThreshold,
		item.IsDeleted,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory item %s: %w", item.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves a non-deleted item by its ID.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE item_id = $1 AND is_deleted = FALSE;
	`
	item, err := scanInventoryItem(r.pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by ID %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems retrieves non-deleted items, optionally only those at or below
// their minimum threshold.
func (r *PgxInventoryRepository) ListItems(ctx context.Context, limit int, offset int, lowStockOnly bool) ([]domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE is_deleted = FALSE
	`
	if lowStockOnly {
		query += ` AND minimum_threshold > 0 AND quantity <= minimum_threshold`
	}
	query += `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}
	return items, nil
}

// UpdateItem updates the editable fields of an item. Quantity is deliberately
// excluded; it only changes through UpdateItemQuantity inside a transaction.
func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET item_type = $2, color = $3, unit = $4, price = $5, location = $6, supplier = $7,
		    minimum_threshold = $8, last_updated_at = $9, last_updated_by = $10
		WHERE item_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.ItemType,
		item.Color,
		item.Unit,
		item.Price,
		item.Location,
		item.Supplier,
		item.MinimumThreshold,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteItem marks an item deleted; its movement history is retained.
func (r *PgxInventoryRepository) SoftDeleteItem(ctx context.Context, itemID string, userID string, now time.Time) error {
	query := `
		UPDATE inventory_items
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE item_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query, itemID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete inventory item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListMovementsByItem retrieves the movement history for one item, newest first.
func (r *PgxInventoryRepository) ListMovementsByItem(ctx context.Context, itemID string, limit int, offset int) ([]domain.StockMovement, error) {
	query := `
		SELECT movement_id, item_id, operation, quantity, previous_quantity, new_quantity, user_name, movement_date, notes, created_at
		FROM stock_movements
		WHERE item_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock movements for item %s: %w", itemID, err)
	}
	defer rows.Close()

	movements := []domain.StockMovement{}
	for rows.Next() {
		var m domain.StockMovement
		err := rows.Scan(
			&m.MovementID,
			&m.ItemID,
			&m.Operation,
			&m.Quantity,
			&m.PreviousQuantity,
			&m.NewQuantity,
			&m.User,
			&m.Date,
			&m.Notes,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock movement rows: %w", err)
	}
	return movements, nil
}

// PurgeDeletedItems physically removes soft-deleted items together with their
// movement histories.
func (r *PgxInventoryRepository) PurgeDeletedItems(ctx context.Context) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `DELETE FROM stock_movements WHERE item_id IN (SELECT item_id FROM inventory_items WHERE is_deleted = TRUE);`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stock movements of deleted items: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM inventory_items WHERE is_deleted = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted inventory items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit purge transaction: %w", err)
	}
	return tag.RowsAffected(), nil
}

// WithTx runs fn within one database transaction.
func (r *PgxInventoryRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.InventoryTxRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(ctx, &pgxInventoryTxRepository{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// pgxInventoryTxRepository exposes the transaction-scoped operations.
type pgxInventoryTxRepository struct {
	tx pgx.Tx
}

// FindItemForUpdate reads an item and locks its row until the transaction ends.
func (r *pgxInventoryTxRepository) FindItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryItemColumns + `
		FROM inventory_items
		WHERE item_id = $1 AND is_deleted = FALSE
		FOR UPDATE;
	`
	item, err := scanInventoryItem(r.tx.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock inventory item %s: %w", itemID, err)
	}
	return item, nil
}

// UpdateItemQuantity writes the new quantity of a locked item.
func (r *pgxInventoryTxRepository) UpdateItemQuantity(ctx context.Context, item domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET quantity = $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	tag, err := r.tx.Exec(ctx, query, item.ItemID, item.Quantity, item.LastUpdatedAt, item.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update quantity of item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InsertMovement appends one movement record.
func (r *pgxInventoryTxRepository) InsertMovement(ctx context.Context, movement domain.StockMovement) error {
	query := `
		INSERT INTO stock_movements (movement_id, item_id, operation, quantity, previous_quantity, new_quantity, user_name, movement_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.tx.Exec(ctx, query,
		movement.MovementID,
		movement.ItemID,
		movement.Operation,
		movement.Quantity,
		movement.PreviousQuantity,
		movement.NewQuantity,
		movement.User,
		movement.Date,
		movement.Notes,
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock movement %s: %w", movement.MovementID, err)
	}
	return nil
}
