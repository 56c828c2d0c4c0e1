package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// CreateInventoryItemRequest defines the data needed to create an inventory item.
type CreateInventoryItemRequest struct {
	ItemType         string          `json:"type" binding:"required"`
	Color            string          `json:"color"`
	Quantity         float64         `json:"quantity" binding:"gte=0"`
	Unit             string          `json:"unit" binding:"required"`
	Price            decimal.Decimal `json:"price"`
	Location         string          `json:"location"`
	Supplier         string          `json:"supplier"`
	MinimumThreshold float64         `json:"minimumThreshold" binding:"gte=0"`
	User             string          `json:"user"` // recorded in audit fields
}

// UpdateInventoryItemRequest defines the editable non-quantity fields.
// Quantity is deliberately absent; it only changes through movements.
type UpdateInventoryItemRequest struct {
	ItemType         *string          `json:"type"`
	Color            *string          `json:"color"`
	Unit             *string          `json:"unit"`
	Price            *decimal.Decimal `json:"price"`
	Location         *string          `json:"location"`
	Supplier         *string          `json:"supplier"`
	MinimumThreshold *float64         `json:"minimumThreshold"`
	User             string           `json:"user"`
}

// ApplyMovementRequest is one inbound/outbound stock movement submission.
type ApplyMovementRequest struct {
	Operation string     `json:"operation" binding:"required,oneof=in out"`
	Quantity  float64    `json:"quantity" binding:"required"`
	User      string     `json:"user"`
	Date      *time.Time `json:"date"`
	Notes     string     `json:"notes"`
}

// InventoryItemResponse mirrors domain.InventoryItem for API consumers.
type InventoryItemResponse struct {
	ID               string          `json:"id"`
	ItemType         string          `json:"type"`
	Color            string          `json:"color"`
	Quantity         float64         `json:"quantity"`
	Unit             string          `json:"unit"`
	Price            decimal.Decimal `json:"price"`
	Location         string          `json:"location"`
	Supplier         string          `json:"supplier"`
	MinimumThreshold float64         `json:"minimumThreshold"`
	LowStock         bool            `json:"lowStock"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// StockMovementResponse mirrors domain.StockMovement.
type StockMovementResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"itemId"`
	Operation        string    `json:"operation"`
	Quantity         float64   `json:"quantity"`
	PreviousQuantity float64   `json:"previousQuantity"`
	NewQuantity      float64   `json:"newQuantity"`
	User             string    `json:"user"`
	Date             time.Time `json:"date"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ApplyMovementResponse returns the updated item together with its movement record.
type ApplyMovementResponse struct {
	Item     InventoryItemResponse `json:"item"`
	Movement StockMovementResponse `json:"movement"`
}

// ListInventoryParams defines query parameters for listing items.
type ListInventoryParams struct {
	Limit    int  `form:"limit,default=50"`
	Offset   int  `form:"offset,default=0"`
	LowStock bool `form:"lowStock"`
}

// ListInventoryResponse wraps the list of items.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListMovementsResponse wraps the movement history of one item.
type ListMovementsResponse struct {
	Movements []StockMovementResponse `json:"movements"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its DTO.
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:               item.ItemID,
		ItemType:         item.ItemType,
		Color:            item.Color,
		Quantity:         item.Quantity,
		Unit:             item.Unit,
		Price:            item.Price,
		Location:         item.Location,
		Supplier:         item.Supplier,
		MinimumThreshold: item.MinimumThreshold,
		LowStock:         item.IsLowStock(),
		CreatedAt:        item.CreatedAt,
		CreatedBy:        item.CreatedBy,
		LastUpdatedAt:    item.LastUpdatedAt,
		LastUpdatedBy:    item.LastUpdatedBy,
	}
}

// ToStockMovementResponse converts a domain.StockMovement to its DTO.
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:               m.MovementID,
		ItemID:           m.ItemID,
		Operation:        string(m.Operation),
		Quantity:         m.Quantity,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		User:             m.User,
		Date:             m.Date,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
}

// ToStockMovementResponses converts a slice of movements.
func ToStockMovementResponses(movements []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(movements))
	for i := range movements {
		res[i] = ToStockMovementResponse(&movements[i])
	}
	return res
}

// ToApplyMovementResponse pairs the updated item with its movement record.
func ToApplyMovementResponse(item *domain.InventoryItem, movement *domain.StockMovement) ApplyMovementResponse {
	return ApplyMovementResponse{
		Item:     ToInventoryItemResponse(item),
		Movement: ToStockMovementResponse(movement),
	}
}

// ToListInventoryResponse wraps a slice of items.
func ToListInventoryResponse(items []domain.InventoryItem) ListInventoryResponse {
	res := make([]InventoryItemResponse, len(items))
	for i := range items {
		res[i] = ToInventoryItemResponse(&items[i])
	}
	return ListInventoryResponse{Items: res}
}

// ToListMovementsResponse wraps a movement history.
func ToListMovementsResponse(movements []domain.StockMovement) ListMovementsResponse {
	return ListMovementsResponse{Movements: ToStockMovementResponses(movements)}
}
