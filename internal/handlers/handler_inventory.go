package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

// inventoryHandler handles HTTP requests related to inventory items and stock movements.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers routes related to inventory.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/:id", h.getItem)
		inventory.PUT("/:id", h.updateItem)
		inventory.DELETE("/:id", h.deleteItem)
		inventory.POST("/:id/movements", h.applyMovement)
		inventory.GET("/:id/movements", h.listMovements)
	}
}

// createItem godoc
// @Summary Create a new inventory item
// @Description Creates a new stock-keeping record
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// getItem godoc
// @Summary Get an inventory item by ID
// @Description Retrieves one stock-keeping record
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Description Lists stock-keeping records, optionally only those at or below their minimum threshold
// @Tags inventory
// @Produce  json
// @Param   limit query int false "Max items to return" default(50)
// @Param   offset query int false "Items to skip" default(0)
// @Param   lowStock query bool false "Only low-stock items"
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInventoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list inventory items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// updateItem godoc
// @Summary Update an inventory item
// @Description Edits the non-quantity fields of an item; quantity only changes through movements
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Description Soft-deletes an item; its movement history is retained until the trash is emptied
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   user query string false "Acting user"
// @Success 204 "Item deleted"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id"), c.Query("user"))
	if err != nil {
		respondServiceError(c, err, "Failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}

// applyMovement godoc
// @Summary Apply a stock movement
// @Description Applies one inbound or outbound quantity movement and appends its audit record atomically
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   movement body dto.ApplyMovementRequest true "Movement details"
// @Success 200 {object} dto.ApplyMovementResponse
// @Failure 400 {object} map[string]string "Invalid operation or quantity"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 422 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Failed to apply movement"
// @Router /inventory/{id}/movements [post]
func (h *inventoryHandler) applyMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, movement, err := h.inventoryService.ApplyMovement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to apply stock movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplyMovementResponse(item, movement))
}

// listMovements godoc
// @Summary List stock movements of an item
// @Description Retrieves the append-only movement history of one item, newest first
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   limit query int false "Max movements to return" default(50)
// @Param   offset query int false "Movements to skip" default(0)
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Router /inventory/{id}/movements [get]
func (h *inventoryHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListMovements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	movements, err := h.inventoryService.ListMovements(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list stock movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}
