package repositories

import (
	"context"
	"time"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// SupplierRepository is the record store for supplier registry entries.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	SoftDeleteSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error
	PurgeDeletedSuppliers(ctx context.Context) (int64, error)
}

// CustomerRepository is the record store for customer registry entries.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	SoftDeleteCustomer(ctx context.Context, customerID string, userID string, now time.Time) error
	PurgeDeletedCustomers(ctx context.Context) (int64, error)
}
