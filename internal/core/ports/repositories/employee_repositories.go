package repositories

import (
	"context"
	"time"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// EmployeeTxRepository exposes the operations available inside one store
// transaction, so an updated employee record and its appended history entry
// are persisted both-or-neither.
type EmployeeTxRepository interface {
	// FindEmployeeForUpdate reads an employee and locks the row for the
	// duration of the transaction.
	FindEmployeeForUpdate(ctx context.Context, employeeID string) (*domain.Employee, error)
	// UpdateEmployeeLedger writes the ledger-owned fields (salary, paid,
	// remaining, hours, overtime, absences, status, last work date).
	UpdateEmployeeLedger(ctx context.Context, employee domain.Employee) error
	InsertSalaryTransaction(ctx context.Context, txn domain.SalaryTransaction) error
	InsertAttendanceRecord(ctx context.Context, record domain.AttendanceRecord) error
}

// EmployeeRepository is the record store for employees and their append-only
// salary transaction and attendance histories.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	SoftDeleteEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error
	ListTransactionsByEmployee(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error)
	PurgeDeletedEmployees(ctx context.Context) (int64, error)

	// WithTx runs fn within one store transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx EmployeeTxRepository) error) error
}
