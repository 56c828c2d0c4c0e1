package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatus tracks the current presence state of an employee.
type EmployeeStatus string

const (
	EmployeeActive  EmployeeStatus = "active"
	EmployeeOnLeave EmployeeStatus = "on_leave"
	EmployeeAbsent  EmployeeStatus = "absent"
)

// AttendanceStatus is the outcome of one attendance marking.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// ParseAttendanceStatus validates a raw attendance status string.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(s) {
	case AttendancePresent:
		return AttendancePresent, nil
	case AttendanceAbsent:
		return AttendanceAbsent, nil
	default:
		return "", fmt.Errorf("unknown attendance status %q", s)
	}
}

// SalaryTransactionType identifies the effect of a salary transaction.
// The canonical stored values are the Arabic labels carried over from the
// factory's records; English aliases are accepted on input.
type SalaryTransactionType string

const (
	TxnSalaryPayment SalaryTransactionType = "استلام راتب"
	TxnBonus         SalaryTransactionType = "مكافأة"
	TxnDeduction     SalaryTransactionType = "خصم"
	TxnOvertime      SalaryTransactionType = "ساعات إضافية"
	TxnAbsence       SalaryTransactionType = "غياب"
)

var salaryTransactionAliases = map[string]SalaryTransactionType{
	"payment":   TxnSalaryPayment,
	"bonus":     TxnBonus,
	"deduction": TxnDeduction,
	"overtime":  TxnOvertime,
	"absence":   TxnAbsence,
}

// ParseSalaryTransactionType resolves either a canonical value or an English
// alias to the canonical transaction type.
func ParseSalaryTransactionType(s string) (SalaryTransactionType, error) {
	switch SalaryTransactionType(s) {
	case TxnSalaryPayment, TxnBonus, TxnDeduction, TxnOvertime, TxnAbsence:
		return SalaryTransactionType(s), nil
	}
	if t, ok := salaryTransactionAliases[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown salary transaction type %q", s)
}

// Alias returns the English alias for a canonical transaction type, used in
// audit descriptions and API responses.
func (t SalaryTransactionType) Alias() string {
	for alias, canonical := range salaryTransactionAliases {
		if canonical == t {
			return alias
		}
	}
	return string(t)
}

// Employee is the payroll and attendance record for one worker.
// Paid/Remaining/Salary are mutated only through the employee ledger and hold
// the invariant Remaining == Salary - Paid after every mutation.
type Employee struct {
	EmployeeID   string          `json:"id"`
	Name         string          `json:"name"`
	Position     string          `json:"position"`
	Salary       decimal.Decimal `json:"salary"`
	Paid         decimal.Decimal `json:"paid"`
	Remaining    decimal.Decimal `json:"remaining"`
	HoursWorked  float64         `json:"hoursWorked"`
	Overtime     int64           `json:"overtime"`
	Absences     int64           `json:"absences"`
	Status       EmployeeStatus  `json:"status"`
	LastWorkDate *time.Time      `json:"lastWorkDate"`
	Notes        string          `json:"notes"`
	IsDeleted    bool            `json:"isDeleted"`
	AuditFields

	// Append-only histories, loaded on detail reads.
	Attendance         []AttendanceRecord  `json:"attendance,omitempty"`
	SalaryTransactions []SalaryTransaction `json:"salaryTransactions,omitempty"`
}

// Validate checks invariants on the employee record itself.
func (e Employee) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("employee name is required")
	}
	if e.Salary.IsNegative() {
		return fmt.Errorf("employee salary must not be negative")
	}
	if !e.Remaining.Equal(e.Salary.Sub(e.Paid)) {
		return fmt.Errorf("employee remaining %s does not equal salary %s minus paid %s",
			e.Remaining, e.Salary, e.Paid)
	}
	return nil
}

// AttendanceRecord is one append-only attendance event.
type AttendanceRecord struct {
	RecordID   string           `json:"id"`
	EmployeeID string           `json:"employeeId"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
}

// SalaryTransaction is one append-only pay-affecting event. Amount is signed
// for display only; the ledger effect is fixed per Type.
type SalaryTransaction struct {
	TransactionID string                `json:"id"`
	EmployeeID    string                `json:"employeeId"`
	Date          time.Time             `json:"date"`
	Type          SalaryTransactionType `json:"type"`
	Amount        decimal.Decimal       `json:"amount"`
	Timestamp     time.Time             `json:"timestamp"`
	Description   string                `json:"description"`
}
