package domain

import "fmt"

// Supplier is a registry record for a fabric or material supplier.
type Supplier struct {
	SupplierID string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Materials  string `json:"materials"`
	Notes      string `json:"notes"`
	IsDeleted  bool   `json:"isDeleted"`
	AuditFields
}

// Validate checks invariants on the supplier record.
func (s Supplier) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("supplier name is required")
	}
	return nil
}
