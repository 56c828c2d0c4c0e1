package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Customer is a registry record for a factory customer.
type Customer struct {
	CustomerID  string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TotalOrders decimal.Decimal `json:"totalOrders"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Notes       string          `json:"notes"`
	IsDeleted   bool            `json:"isDeleted"`
	AuditFields
}

// PaymentRatio is the share of the customer's order value already paid,
// in [0,1]. Customers without orders have a ratio of zero. Derived on read,
// never persisted.
func (c Customer) PaymentRatio() decimal.Decimal {
	if c.TotalOrders.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	ratio := c.TotalPaid.Div(c.TotalOrders)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// Validate checks invariants on the customer record.
func (c Customer) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("customer name is required")
	}
	if c.TotalOrders.IsNegative() || c.TotalPaid.IsNegative() {
		return fmt.Errorf("customer order and payment totals must not be negative")
	}
	return nil
}
