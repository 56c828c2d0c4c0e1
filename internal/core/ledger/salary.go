package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// ApplyTransaction validates and applies one salary transaction against an
// employee record. The effect is fixed per transaction type; the sign of the
// input amount is ignored. Remaining is always recomputed as salary - paid.
// The input employee is never modified.
func ApplyTransaction(emp domain.Employee, txType domain.SalaryTransactionType, amount decimal.Decimal, date time.Time, now time.Time) (domain.Employee, domain.SalaryTransaction, error) {
	if amount.IsZero() {
		return domain.Employee{}, domain.SalaryTransaction{}, fmt.Errorf("%w: amount must not be zero", ErrInvalidTransaction)
	}

	a := amount.Abs()
	updated := emp
	signed := a

	switch txType {
	case domain.TxnSalaryPayment:
		paid := updated.Paid.Add(a)
		if paid.GreaterThan(updated.Salary) {
			paid = updated.Salary
		}
		updated.Paid = paid
	case domain.TxnBonus:
		updated.Salary = updated.Salary.Add(a)
		updated.Paid = updated.Paid.Add(a)
	case domain.TxnDeduction:
		paid := updated.Paid.Sub(a)
		if paid.IsNegative() {
			paid = decimal.Zero
		}
		updated.Paid = paid
		signed = a.Neg()
	case domain.TxnOvertime:
		updated.Salary = updated.Salary.Add(a)
		updated.Paid = updated.Paid.Add(a)
		updated.Overtime += a.Div(decimal.NewFromInt(OvertimeHourRate)).IntPart()
	case domain.TxnAbsence:
		paid := updated.Paid.Sub(a)
		if paid.IsNegative() {
			paid = decimal.Zero
		}
		updated.Paid = paid
		updated.Absences++
		signed = a.Neg()
	default:
		return domain.Employee{}, domain.SalaryTransaction{}, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txType)
	}

	updated.Remaining = updated.Salary.Sub(updated.Paid)

	if date.IsZero() {
		date = now
	}

	txn := domain.SalaryTransaction{
		TransactionID: uuid.NewString(),
		EmployeeID:    emp.EmployeeID,
		Date:          date,
		Type:          txType,
		Amount:        signed,
		Timestamp:     now,
		Description:   fmt.Sprintf("%s: %s", txType, signed),
	}
	return updated, txn, nil
}
