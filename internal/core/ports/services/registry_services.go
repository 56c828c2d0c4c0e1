package services

import (
	"context"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/dto"
)

// SupplierSvcFacade defines the operations offered by the supplier service.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string, userID string) error
	PurgeDeleted(ctx context.Context) (int64, error)
}

// CustomerSvcFacade defines the operations offered by the customer service.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string, userID string) error
	PurgeDeleted(ctx context.Context) (int64, error)
}
