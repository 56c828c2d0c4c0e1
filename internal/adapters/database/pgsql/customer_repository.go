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

const customerColumns = `customer_id, name, phone, address, total_orders, total_paid, notes, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for customer registry entries.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{pool: pool}
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Name,
		&c.Phone,
		&c.Address,
		&c.TotalOrders,
		&c.TotalPaid,
		&c.Notes,
		&c.IsDeleted,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.TotalOrders,
		customer.TotalPaid,
		customer.Notes,
		customer.IsDeleted,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_id = $1 AND is_deleted = FALSE;
	`
	c, err := scanCustomer(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE is_deleted = FALSE
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, total_orders = $5, total_paid = $6, notes = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE customer_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.TotalOrders,
		customer.TotalPaid,
		customer.Notes,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) SoftDeleteCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE customer_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query, customerID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) PurgeDeletedCustomers(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE is_deleted = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted customers: %w", err)
	}
	return tag.RowsAffected(), nil
}
