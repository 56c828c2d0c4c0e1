package services

import (
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
)

// NewContainer creates a service container with properly initialized dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Inventory: NewInventoryService(repos.InventoryRepo),
		Employee:  NewEmployeeService(repos.EmployeeRepo),
		Supplier:  NewSupplierService(repos.SupplierRepo),
		Customer:  NewCustomerService(repos.CustomerRepo),
	}
}
