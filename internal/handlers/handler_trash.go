package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

// trashHandler handles purging of soft-deleted records.
type trashHandler struct {
	services *portssvc.ServiceContainer
}

func newTrashHandler(services *portssvc.ServiceContainer) *trashHandler {
	return &trashHandler{services: services}
}

// registerTrashRoutes registers routes related to the trash.
func registerTrashRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTrashHandler(services)

	trash := rg.Group("/trash")
	{
		trash.POST("/empty", h.emptyTrash)
	}
}

// emptyTrash godoc
// @Summary Empty the trash
// @Description Physically removes all soft-deleted records and their histories across every collection
// @Tags trash
// @Produce  json
// @Success 200 {object} dto.EmptyTrashResponse
// @Failure 500 {object} map[string]string "Failed to empty trash"
// @Router /trash/empty [post]
func (h *trashHandler) emptyTrash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	items, err := h.services.Inventory.PurgeDeleted(ctx)
	if err != nil {
		respondServiceError(c, err, "Failed to empty trash")
		return
	}
	employees, err := h.services.Employee.PurgeDeleted(ctx)
	if err != nil {
		respondServiceError(c, err, "Failed to empty trash")
		return
	}
	suppliers, err := h.services.Supplier.PurgeDeleted(ctx)
	if err != nil {
		respondServiceError(c, err, "Failed to empty trash")
		return
	}
	customers, err := h.services.Customer.PurgeDeleted(ctx)
	if err != nil {
		respondServiceError(c, err, "Failed to empty trash")
		return
	}

	logger.Info("Trash emptied",
		slog.Int64("inventory", items),
		slog.Int64("employees", employees),
		slog.Int64("suppliers", suppliers),
		slog.Int64("customers", customers),
	)
	c.JSON(http.StatusOK, dto.EmptyTrashResponse{
		Inventory: items,
		Employees: employees,
		Suppliers: suppliers,
		Customers: customers,
	})
}
