package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TotalOrders decimal.Decimal `json:"totalOrders"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Notes       string          `json:"notes"`
	User        string          `json:"user"`
}

// UpdateCustomerRequest defines the editable customer fields.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	Address     *string          `json:"address"`
	TotalOrders *decimal.Decimal `json:"totalOrders"`
	TotalPaid   *decimal.Decimal `json:"totalPaid"`
	Notes       *string          `json:"notes"`
	User        string           `json:"user"`
}

// CustomerResponse mirrors domain.Customer plus the derived payment ratio.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	TotalOrders   decimal.Decimal `json:"totalOrders"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	PaymentRatio  decimal.Decimal `json:"paymentRatio"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to its DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.CustomerID,
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		TotalOrders:   c.TotalOrders,
		TotalPaid:     c.TotalPaid,
		PaymentRatio:  c.PaymentRatio(),
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListCustomersResponse wraps a slice of customers.
func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: res}
}
