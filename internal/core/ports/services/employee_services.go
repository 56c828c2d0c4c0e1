package services

import (
	"context"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/dto"
)

// EmployeeSvcFacade defines the operations offered by the employee service.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	// GetEmployeeByID returns the employee with both histories loaded.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string, userID string) error

	// ApplyTransaction runs the salary ledger and persists the updated
	// employee and transaction record atomically.
	ApplyTransaction(ctx context.Context, employeeID string, req dto.ApplySalaryTransactionRequest) (*domain.Employee, *domain.SalaryTransaction, error)
	// MarkAttendance appends an attendance event and persists the updated
	// employee and record atomically.
	MarkAttendance(ctx context.Context, employeeID string, req dto.MarkAttendanceRequest) (*domain.Employee, *domain.AttendanceRecord, error)
	// GetPerformance recomputes the derived performance score.
	GetPerformance(ctx context.Context, employeeID string) (*dto.PerformanceResponse, error)

	PurgeDeleted(ctx context.Context) (int64, error)
}
