package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
	portssvc "github.com/loomworks/textile_factory_app/internal/core/ports/services"
	"github.com/loomworks/textile_factory_app/internal/dto"
	"github.com/loomworks/textile_factory_app/internal/middleware"
)

// employeeService provides employee records, salary transactions, attendance
// and the derived performance score.
type employeeService struct {
	repo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{repo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee creates a new employee record. Paid starts at zero and
// remaining at the full salary.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	emp := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Position:   req.Position,
		Salary:     req.Salary,
		Paid:       decimal.Zero,
		Remaining:  req.Salary,
		Status:     domain.EmployeeActive,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.User,
			LastUpdatedAt: now,
			LastUpdatedBy: req.User,
		},
	}
	if err := emp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.repo.SaveEmployee(ctx, emp); err != nil {
		logger.Error("Failed to save employee", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	logger.Info("Employee created", slog.String("employee_id", emp.EmployeeID), slog.String("name", emp.Name))
	return &emp, nil
}

// GetEmployeeByID retrieves an employee with both histories attached.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	emp, err := s.repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	txns, err := s.repo.ListTransactionsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load salary transactions: %w", err)
	}
	attendance, err := s.repo.ListAttendanceByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	emp.SalaryTransactions = txns
	emp.Attendance = attendance
	return emp, nil
}

// ListEmployees lists employee records without histories.
func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	employees, err := s.repo.ListEmployees(ctx, limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list employees", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee edits the directly editable fields. A salary change keeps
// paid intact and recomputes remaining.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	emp, err := s.repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		emp.Name = *req.Name
		updated = true
	}
	if req.Position != nil {
		emp.Position = *req.Position
		updated = true
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
		emp.Remaining = emp.Salary.Sub(emp.Paid)
		updated = true
	}
	if req.Notes != nil {
		emp.Notes = *req.Notes
		updated = true
	}
	if !updated {
		return emp, nil
	}

	if err := emp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	emp.LastUpdatedAt = now
	emp.LastUpdatedBy = req.User

	if err := s.repo.UpdateEmployee(ctx, *emp); err != nil {
		logger.Error("Failed to update employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	logger.Info("Employee updated", slog.String("employee_id", employeeID))
	return emp, nil
}

// DeleteEmployee soft-deletes an employee; histories are retained.
func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if err := s.repo.SoftDeleteEmployee(ctx, employeeID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete employee", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return err
	}

	logger.Info("Employee soft-deleted", slog.String("employee_id", employeeID))
	return nil
}

// ApplyTransaction runs the salary ledger against one employee. The employee
// row is locked and re-read inside the store transaction so the record update
// and the history insert land both-or-neither.
func (s *employeeService) ApplyTransaction(ctx context.Context, employeeID string, req dto.ApplySalaryTransactionRequest) (*domain.Employee, *domain.SalaryTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txType, err := domain.ParseSalaryTransactionType(req.Type)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ledger.ErrInvalidTransaction, err)
	}

	now := time.Now().UTC()
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	var updatedEmp domain.Employee
	var txn domain.SalaryTransaction
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx portsrepo.EmployeeTxRepository) error {
		emp, err := tx.FindEmployeeForUpdate(ctx, employeeID)
		if err != nil {
			return err
		}

		updated, t, err := ledger.ApplyTransaction(*emp, txType, req.Amount, date, now)
		if err != nil {
			return err
		}
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = req.User

		if err := tx.UpdateEmployeeLedger(ctx, updated); err != nil {
			return fmt.Errorf("failed to update employee ledger fields: %w", err)
		}
		if err := tx.InsertSalaryTransaction(ctx, t); err != nil {
			return fmt.Errorf("failed to insert salary transaction: %w", err)
		}

		updatedEmp = updated
		txn = t
		return nil
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidTransaction) {
			logger.Warn("Salary transaction rejected", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply salary transaction", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return nil, nil, err
	}

	logger.Info("Salary transaction applied",
		slog.String("employee_id", employeeID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", txn.Type.Alias()),
		slog.String("amount", txn.Amount.String()),
	)
	return &updatedEmp, &txn, nil
}

// MarkAttendance records one attendance event atomically with its effect on
// the employee record.
func (s *employeeService) MarkAttendance(ctx context.Context, employeeID string, req dto.MarkAttendanceRequest) (*domain.Employee, *domain.AttendanceRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status, err := domain.ParseAttendanceStatus(req.Status)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	var updatedEmp domain.Employee
	var record domain.AttendanceRecord
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx portsrepo.EmployeeTxRepository) error {
		emp, err := tx.FindEmployeeForUpdate(ctx, employeeID)
		if err != nil {
			return err
		}

		updated, rec, err := ledger.MarkAttendance(*emp, status, date, now)
		if err != nil {
			return err
		}
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = req.User

		if err := tx.UpdateEmployeeLedger(ctx, updated); err != nil {
			return fmt.Errorf("failed to update employee ledger fields: %w", err)
		}
		if err := tx.InsertAttendanceRecord(ctx, rec); err != nil {
			return fmt.Errorf("failed to insert attendance record: %w", err)
		}

		updatedEmp = updated
		record = rec
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to mark attendance", slog.String("error", err.Error()), slog.String("employee_id", employeeID))
		}
		return nil, nil, err
	}

	logger.Info("Attendance marked",
		slog.String("employee_id", employeeID),
		slog.String("record_id", record.RecordID),
		slog.String("status", string(record.Status)),
	)
	return &updatedEmp, &record, nil
}

// GetPerformance recomputes the derived performance score from the current
// record and attendance history. Nothing is persisted.
func (s *employeeService) GetPerformance(ctx context.Context, employeeID string) (*dto.PerformanceResponse, error) {
	emp, err := s.repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	attendance, err := s.repo.ListAttendanceByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	emp.Attendance = attendance

	score := ledger.PerformanceScore(*emp, time.Now().UTC())
	return &dto.PerformanceResponse{
		EmployeeID:  emp.EmployeeID,
		Score:       score,
		HoursWorked: emp.HoursWorked,
		Overtime:    emp.Overtime,
		Absences:    emp.Absences,
	}, nil
}

// PurgeDeleted physically removes soft-deleted employees and their histories.
func (s *employeeService) PurgeDeleted(ctx context.Context) (int64, error) {
	purged, err := s.repo.PurgeDeletedEmployees(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to purge deleted employees", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to purge deleted employees: %w", err)
	}
	return purged, nil
}
