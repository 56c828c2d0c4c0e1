package dto

// EmptyTrashResponse reports how many soft-deleted rows were purged per collection.
type EmptyTrashResponse struct {
	Inventory int64 `json:"inventory"`
	Employees int64 `json:"employees"`
	Suppliers int64 `json:"suppliers"`
	Customers int64 `json:"customers"`
}
