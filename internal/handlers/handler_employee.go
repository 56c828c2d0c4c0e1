package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees, salary
// transactions and attendance.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
		employees.POST("/:id/transactions", h.applyTransaction)
		employees.POST("/:id/attendance", h.markAttendance)
		employees.GET("/:id/performance", h.getPerformance)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Creates a new payroll record; paid starts at zero and remaining at the full salary
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(emp))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Description Retrieves one employee with salary transaction and attendance histories and the derived performance score
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve employee"
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	employeeID := c.Param("id")

	emp, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve employee")
		return
	}

	resp := dto.ToEmployeeResponse(emp)
	if perf, err := h.employeeService.GetPerformance(c.Request.Context(), employeeID); err == nil {
		resp.PerformanceScore = &perf.Score
	}
	c.JSON(http.StatusOK, resp)
}

// listEmployees godoc
// @Summary List employees
// @Description Lists employee records without histories
// @Tags employees
// @Produce  json
// @Param   limit query int false "Max employees to return" default(50)
// @Param   offset query int false "Employees to skip" default(0)
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEmployees", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Edits the directly editable fields; ledger-owned fields only change through transactions and attendance
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to update employee"
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(emp))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Soft-deletes an employee; histories are retained until the trash is emptied
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   user query string false "Acting user"
// @Success 204 "Employee deleted"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to delete employee"
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id"), c.Query("user"))
	if err != nil {
		respondServiceError(c, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// applyTransaction godoc
// @Summary Apply a salary transaction
// @Description Applies one pay-affecting transaction and appends its audit record atomically
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   transaction body dto.ApplySalaryTransactionRequest true "Transaction details"
// @Success 200 {object} dto.ApplySalaryTransactionResponse
// @Failure 400 {object} map[string]string "Invalid transaction type or amount"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to apply transaction"
// @Router /employees/{id}/transactions [post]
func (h *employeeHandler) applyTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplySalaryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, txn, err := h.employeeService.ApplyTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to apply salary transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplySalaryTransactionResponse(emp, txn))
}

// markAttendance godoc
// @Summary Mark attendance
// @Description Records one present/absent event and applies its effect on the employee record atomically
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   attendance body dto.MarkAttendanceRequest true "Attendance details"
// @Success 200 {object} dto.MarkAttendanceResponse
// @Failure 400 {object} map[string]string "Invalid attendance status"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to mark attendance"
// @Router /employees/{id}/attendance [post]
func (h *employeeHandler) markAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MarkAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	emp, record, err := h.employeeService.MarkAttendance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to mark attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToMarkAttendanceResponse(emp, record))
}

// getPerformance godoc
// @Summary Get the performance score of an employee
// @Description Recomputes the derived performance score from the current record and recent attendance
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.PerformanceResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to compute performance"
// @Router /employees/{id}/performance [get]
func (h *employeeHandler) getPerformance(c *gin.Context) {
	perf, err := h.employeeService.GetPerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to compute performance score")
		return
	}
	c.JSON(http.StatusOK, perf)
}
