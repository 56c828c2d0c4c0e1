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

const supplierColumns = `supplier_id, name, phone, address, materials, notes, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxSupplierRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSupplierRepository creates a new repository for supplier registry entries.
func NewPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{pool: pool}
}

func scanSupplier(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.Name,
		&s.Phone,
		&s.Address,
		&s.Materials,
		&s.Notes,
		&s.IsDeleted,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Phone,
		supplier.Address,
		supplier.Materials,
		supplier.Notes,
		supplier.IsDeleted,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE supplier_id = $1 AND is_deleted = FALSE;
	`
	s, err := scanSupplier(r.pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	return s, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE is_deleted = FALSE
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, phone = $3, address = $4, materials = $5, notes = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE supplier_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Phone,
		supplier.Address,
		supplier.Materials,
		supplier.Notes,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) SoftDeleteSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error {
	query := `
		UPDATE suppliers
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE supplier_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query, supplierID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) PurgeDeletedSuppliers(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE is_deleted = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted suppliers: %w", err)
	}
	return tag.RowsAffected(), nil
}
