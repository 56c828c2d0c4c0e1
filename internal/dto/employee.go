package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	Notes    string          `json:"notes"`
	User     string          `json:"user"`
}

// UpdateEmployeeRequest defines the directly editable employee fields.
// Ledger-owned fields (paid, remaining, overtime, absences, hours) are
// deliberately absent; they only change through transactions and attendance.
type UpdateEmployeeRequest struct {
	Name     *string          `json:"name"`
	Position *string          `json:"position"`
	Salary   *decimal.Decimal `json:"salary"`
	Notes    *string          `json:"notes"`
	User     string           `json:"user"`
}

// ApplySalaryTransactionRequest is one salary transaction submission.
// Type accepts the canonical Arabic values or their English aliases
// (payment, bonus, deduction, overtime, absence).
type ApplySalaryTransactionRequest struct {
	Type   string          `json:"type" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	Date   *time.Time      `json:"date"`
	User   string          `json:"user"`
}

// MarkAttendanceRequest is one attendance submission.
type MarkAttendanceRequest struct {
	Status string     `json:"status" binding:"required,oneof=present absent"`
	Date   *time.Time `json:"date"`
	User   string     `json:"user"`
}

// EmployeeResponse mirrors domain.Employee. Histories and the performance
// score are populated on detail reads only.
type EmployeeResponse struct {
	ID                 string                      `json:"id"`
	Name               string                      `json:"name"`
	Position           string                      `json:"position"`
	Salary             decimal.Decimal             `json:"salary"`
	Paid               decimal.Decimal             `json:"paid"`
	Remaining          decimal.Decimal             `json:"remaining"`
	HoursWorked        float64                     `json:"hoursWorked"`
	Overtime           int64                       `json:"overtime"`
	Absences           int64                       `json:"absences"`
	Status             string                      `json:"status"`
	LastWorkDate       *time.Time                  `json:"lastWorkDate,omitempty"`
	Notes              string                      `json:"notes"`
	PerformanceScore   *float64                    `json:"performanceScore,omitempty"`
	SalaryTransactions []SalaryTransactionResponse `json:"salaryTransactions,omitempty"`
	Attendance         []AttendanceRecordResponse  `json:"attendance,omitempty"`
	CreatedAt          time.Time                   `json:"createdAt"`
	CreatedBy          string                      `json:"createdBy"`
	LastUpdatedAt      time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy      string                      `json:"lastUpdatedBy"`
}

// SalaryTransactionResponse mirrors domain.SalaryTransaction.
type SalaryTransactionResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	TypeAlias   string          `json:"typeAlias"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
}

// AttendanceRecordResponse mirrors domain.AttendanceRecord.
type AttendanceRecordResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// ApplySalaryTransactionResponse returns the updated employee with the
// appended transaction.
type ApplySalaryTransactionResponse struct {
	Employee    EmployeeResponse          `json:"employee"`
	Transaction SalaryTransactionResponse `json:"transaction"`
}

// MarkAttendanceResponse returns the updated employee with the appended record.
type MarkAttendanceResponse struct {
	Employee EmployeeResponse         `json:"employee"`
	Record   AttendanceRecordResponse `json:"record"`
}

// PerformanceResponse returns the derived performance score and its inputs.
type PerformanceResponse struct {
	EmployeeID  string  `json:"employeeId"`
	Score       float64 `json:"score"`
	HoursWorked float64 `json:"hoursWorked"`
	Overtime    int64   `json:"overtime"`
	Absences    int64   `json:"absences"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its DTO.
func ToEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            emp.EmployeeID,
		Name:          emp.Name,
		Position:      emp.Position,
		Salary:        emp.Salary,
		Paid:          emp.Paid,
		Remaining:     emp.Remaining,
		HoursWorked:   emp.HoursWorked,
		Overtime:      emp.Overtime,
		Absences:      emp.Absences,
		Status:        string(emp.Status),
		LastWorkDate:  emp.LastWorkDate,
		Notes:         emp.Notes,
		CreatedAt:     emp.CreatedAt,
		CreatedBy:     emp.CreatedBy,
		LastUpdatedAt: emp.LastUpdatedAt,
		LastUpdatedBy: emp.LastUpdatedBy,
	}
	if len(emp.SalaryTransactions) > 0 {
		resp.SalaryTransactions = ToSalaryTransactionResponses(emp.SalaryTransactions)
	}
	if len(emp.Attendance) > 0 {
		resp.Attendance = ToAttendanceRecordResponses(emp.Attendance)
	}
	return resp
}

// ToSalaryTransactionResponse converts a domain.SalaryTransaction to its DTO.
func ToSalaryTransactionResponse(txn *domain.SalaryTransaction) SalaryTransactionResponse {
	return SalaryTransactionResponse{
		ID:          txn.TransactionID,
		EmployeeID:  txn.EmployeeID,
		Date:        txn.Date,
		Type:        string(txn.Type),
		TypeAlias:   txn.Type.Alias(),
		Amount:      txn.Amount,
		Timestamp:   txn.Timestamp,
		Description: txn.Description,
	}
}

// ToSalaryTransactionResponses converts a slice of transactions.
func ToSalaryTransactionResponses(txns []domain.SalaryTransaction) []SalaryTransactionResponse {
	res := make([]SalaryTransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToSalaryTransactionResponse(&txns[i])
	}
	return res
}

// ToAttendanceRecordResponse converts a domain.AttendanceRecord to its DTO.
func ToAttendanceRecordResponse(rec *domain.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:         rec.RecordID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		Status:     string(rec.Status),
		Timestamp:  rec.Timestamp,
	}
}

// ToAttendanceRecordResponses converts a slice of attendance records.
func ToAttendanceRecordResponses(records []domain.AttendanceRecord) []AttendanceRecordResponse {
	res := make([]AttendanceRecordResponse, len(records))
	for i := range records {
		res[i] = ToAttendanceRecordResponse(&records[i])
	}
	return res
}

// ToListEmployeesResponse wraps a slice of employees.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: res}
}

// ToApplySalaryTransactionResponse pairs the updated employee with the
// appended transaction.
func ToApplySalaryTransactionResponse(emp *domain.Employee, txn *domain.SalaryTransaction) ApplySalaryTransactionResponse {
	return ApplySalaryTransactionResponse{
		Employee:    ToEmployeeResponse(emp),
		Transaction: ToSalaryTransactionResponse(txn),
	}
}

// ToMarkAttendanceResponse pairs the updated employee with the appended record.
func ToMarkAttendanceResponse(emp *domain.Employee, rec *domain.AttendanceRecord) MarkAttendanceResponse {
	return MarkAttendanceResponse{
		Employee: ToEmployeeResponse(emp),
		Record:   ToAttendanceRecordResponse(rec),
	}
}
