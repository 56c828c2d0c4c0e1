package dto

import (
	"time"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Materials string `json:"materials"`
	Notes     string `json:"notes"`
	User      string `json:"user"`
}

// UpdateSupplierRequest defines the editable supplier fields.
type UpdateSupplierRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Materials *string `json:"materials"`
	Notes     *string `json:"notes"`
	User      string  `json:"user"`
}

// SupplierResponse mirrors domain.Supplier.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Materials     string    `json:"materials"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListSuppliersParams defines query parameters for listing suppliers.
type ListSuppliersParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain.Supplier to its DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.SupplierID,
		Name:          s.Name,
		Phone:         s.Phone,
		Address:       s.Address,
		Materials:     s.Materials,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToListSuppliersResponse wraps a slice of suppliers.
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: res}
}
