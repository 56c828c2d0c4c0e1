package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

// supplierHandler handles HTTP requests related to the supplier registry.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

// createSupplier godoc
// @Summary Create a new supplier
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create supplier"
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create supplier")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to retrieve supplier"
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce  json
// @Param   limit query int false "Max suppliers to return" default(50)
// @Param   offset query int false "Suppliers to skip" default(0)
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list suppliers"
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSuppliersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSuppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list suppliers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept  json
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to update supplier"
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update supplier")
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Description Soft-deletes a supplier; it stays recoverable until the trash is emptied
// @Tags suppliers
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   user query string false "Acting user"
// @Success 204 "Supplier deleted"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to delete supplier"
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	err := h.supplierService.DeleteSupplier(c.Request.Context(), c.Param("id"), c.Query("user"))
	if err != nil {
		respondServiceError(c, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
