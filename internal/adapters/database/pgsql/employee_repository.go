package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	portsrepo "github.com/loomworks/textile_factory_app/internal/core/ports/repositories"
)

const employeeColumns = `employee_id, name, position, salary, paid, remaining, hours_worked, overtime, absences, status, last_work_date, notes, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewPgxEmployeeRepository creates a new repository for employees and their
// salary transaction and attendance histories.
func NewPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{pool: pool}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	err := row.Scan(
		&emp.EmployeeID,
		&emp.Name,
		&emp.Position,
		&emp.Salary,
		&emp.Paid,
		&emp.Remaining,
		&emp.HoursWorked,
		&emp.Overtime,
		&emp.Absences,
		&emp.Status,
		&emp.LastWorkDate,
		&emp.Notes,
		&emp.IsDeleted,
		&emp.CreatedAt,
		&emp.CreatedBy,
		&emp.LastUpdatedAt,
		&emp.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// SaveEmployee inserts a new employee record.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Position,
		employee.Salary,
		employee.Paid,
		employee.Remaining,
		employee.HoursWorked,
		employee.Overtime,
		employee.Absences,
		employee.Status,
		employee.LastWorkDate,
		employee.Notes,
		employee.IsDeleted,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves a non-deleted employee by ID, without histories.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1 AND is_deleted = FALSE;
	`
	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	return emp, nil
}

// ListEmployees retrieves non-deleted employees without histories.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_deleted = FALSE
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

// UpdateEmployee updates the directly editable fields plus the recomputed
// remaining amount.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, position = $3, salary = $4, remaining = $5, notes = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE employee_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Position,
		employee.Salary,
		employee.Remaining,
		employee.Notes,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteEmployee marks an employee deleted; histories are retained.
func (r *PgxEmployeeRepository) SoftDeleteEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	query := `
		UPDATE employees
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query, employeeID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListTransactionsByEmployee retrieves the salary transaction history, newest first.
func (r *PgxEmployeeRepository) ListTransactionsByEmployee(ctx context.Context, employeeID string) ([]domain.SalaryTransaction, error) {
	query := `
		SELECT transaction_id, employee_id, transaction_date, transaction_type, amount, recorded_at, description
		FROM salary_transactions
		WHERE employee_id = $1
		ORDER BY recorded_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary transactions for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	transactions := []domain.SalaryTransaction{}
	for rows.Next() {
		var txn domain.SalaryTransaction
		err := rows.Scan(
			&txn.TransactionID,
			&txn.EmployeeID,
			&txn.Date,
			&txn.Type,
			&txn.Amount,
			&txn.Timestamp,
			&txn.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary transaction rows: %w", err)
	}
	return transactions, nil
}

// ListAttendanceByEmployee retrieves the attendance history, newest first.
func (r *PgxEmployeeRepository) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT record_id, employee_id, attendance_date, status, recorded_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY attendance_date DESC;
	`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	records := []domain.AttendanceRecord{}
	for rows.Next() {
		var rec domain.AttendanceRecord
		err := rows.Scan(
			&rec.RecordID,
			&rec.EmployeeID,
			&rec.Date,
			&rec.Status,
			&rec.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance record rows: %w", err)
	}
	return records, nil
}

// PurgeDeletedEmployees physically removes soft-deleted employees together
// with their histories.
func (r *PgxEmployeeRepository) PurgeDeletedEmployees(ctx context.Context) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `DELETE FROM salary_transactions WHERE employee_id IN (SELECT employee_id FROM employees WHERE is_deleted = TRUE);`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge salary transactions of deleted employees: %w", err)
	}
	_, err = tx.Exec(ctx, `DELETE FROM attendance_records WHERE employee_id IN (SELECT employee_id FROM employees WHERE is_deleted = TRUE);`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge attendance records of deleted employees: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE is_deleted = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted employees: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit purge transaction: %w", err)
	}
	return tag.RowsAffected(), nil
}

// WithTx runs fn within one database transaction.
func (r *PgxEmployeeRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.EmployeeTxRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(ctx, &pgxEmployeeTxRepository{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// pgxEmployeeTxRepository exposes the transaction-scoped operations.
type pgxEmployeeTxRepository struct {
	tx pgx.Tx
}

// FindEmployeeForUpdate reads an employee and locks the row until the
// transaction ends.
func (r *pgxEmployeeTxRepository) FindEmployeeForUpdate(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1 AND is_deleted = FALSE
		FOR UPDATE;
	`
	emp, err := scanEmployee(r.tx.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// UpdateEmployeeLedger writes the ledger-owned fields of a locked employee.
func (r *pgxEmployeeTxRepository) UpdateEmployeeLedger(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET salary = $2, paid = $3, remaining = $4, hours_worked = $5, overtime = $6,
		    absences = $7, status = $8, last_work_date = $9, last_updated_at = $10, last_updated_by = $11
		WHERE employee_id = $1;
	`
	tag, err := r.tx.Exec(ctx, query,
		employee.EmployeeID,
		employee.Salary,
		employee.Paid,
		employee.Remaining,
		employee.HoursWorked,
		employee.Overtime,
		employee.Absences,
		employee.Status,
		employee.LastWorkDate,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger fields of employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// InsertSalaryTransaction appends one salary transaction record.
func (r *pgxEmployeeTxRepository) InsertSalaryTransaction(ctx context.Context, txn domain.SalaryTransaction) error {
	query := `
		INSERT INTO salary_transactions (transaction_id, employee_id, transaction_date, transaction_type, amount, recorded_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.tx.Exec(ctx, query,
		txn.TransactionID,
		txn.EmployeeID,
		txn.Date,
		txn.Type,
		txn.Amount,
		txn.Timestamp,
		txn.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert salary transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// InsertAttendanceRecord appends one attendance record.
func (r *pgxEmployeeTxRepository) InsertAttendanceRecord(ctx context.Context, record domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (record_id, employee_id, attendance_date, status, recorded_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.tx.Exec(ctx, query,
		record.RecordID,
		record.EmployeeID,
		record.Date,
		record.Status,
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attendance record %s: %w", record.RecordID, err)
	}
	return nil
}
