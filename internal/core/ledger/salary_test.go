package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
)

func testEmployee(salary, paid int64) domain.Employee {
	s := decimal.NewFromInt(salary)
	p := decimal.NewFromInt(paid)
	return domain.Employee{
		EmployeeID: "emp-1",
		Name:       "Ahmed",
		Position:   "weaver",
		Salary:     s,
		Paid:       p,
		Remaining:  s.Sub(p),
		Status:     domain.EmployeeActive,
	}
}

func apply(t *testing.T, emp domain.Employee, txType domain.SalaryTransactionType, amount int64) domain.Employee {
	t.Helper()
	updated, _, err := ledger.ApplyTransaction(emp, txType, decimal.NewFromInt(amount), time.Time{}, testNow)
	require.NoError(t, err)
	return updated
}

func TestApplyTransaction_Bonus(t *testing.T) {
	emp := testEmployee(1000, 200)

	updated, txn, err := ledger.ApplyTransaction(emp, domain.TxnBonus, decimal.NewFromInt(100), time.Time{}, testNow)

	require.NoError(t, err)
	assert.True(t, updated.Salary.Equal(decimal.NewFromInt(1100)), "salary is %s", updated.Salary)
	assert.True(t, updated.Paid.Equal(decimal.NewFromInt(300)), "paid is %s", updated.Paid)
	assert.True(t, updated.Remaining.Equal(decimal.NewFromInt(800)), "remaining is %s", updated.Remaining)
	assert.Equal(t, domain.TxnBonus, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(100)))
}

func TestApplyTransaction_PaymentClampedToSalary(t *testing.T) {
	emp := testEmployee(1000, 950)

	updated := apply(t, emp, domain.TxnSalaryPayment, 200)

	assert.True(t, updated.Paid.Equal(decimal.NewFromInt(1000)), "paid is %s", updated.Paid)
	assert.True(t, updated.Remaining.IsZero())
}

func TestApplyTransaction_DeductionFloorsAtZero(t *testing.T) {
	emp := testEmployee(1000, 30)

	updated, txn, err := ledger.ApplyTransaction(emp, domain.TxnDeduction, decimal.NewFromInt(50), time.Time{}, testNow)

	require.NoError(t, err)
	assert.True(t, updated.Paid.IsZero())
	assert.True(t, updated.Remaining.Equal(updated.Salary))
	// Deductions record a negative display amount.
	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(-50)), "amount is %s", txn.Amount)
}

func TestApplyTransaction_Overtime(t *testing.T) {
	emp := testEmployee(1000, 400)

	updated := apply(t, emp, domain.TxnOvertime, 120)

	assert.True(t, updated.Salary.Equal(decimal.NewFromInt(1120)))
	assert.True(t, updated.Paid.Equal(decimal.NewFromInt(520)))
	// 120 units at 50/hour credits floor(2.4) = 2 overtime hours.
	assert.Equal(t, int64(2), updated.Overtime)
	assert.True(t, updated.Remaining.Equal(decimal.NewFromInt(600)))
}

func TestApplyTransaction_Absence(t *testing.T) {
	emp := testEmployee(1000, 400)
	emp.Absences = 2

	updated := apply(t, emp, domain.TxnAbsence, 40)

	assert.True(t, updated.Paid.Equal(decimal.NewFromInt(360)))
	assert.Equal(t, int64(3), updated.Absences)
}

func TestApplyTransaction_Invalid(t *testing.T) {
	emp := testEmployee(1000, 0)

	_, _, err := ledger.ApplyTransaction(emp, domain.TxnBonus, decimal.Zero, time.Time{}, testNow)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransaction)

	_, _, err = ledger.ApplyTransaction(emp, domain.SalaryTransactionType("refund"), decimal.NewFromInt(10), time.Time{}, testNow)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransaction)
}

func TestApplyTransaction_NegativeAmountTreatedAsMagnitude(t *testing.T) {
	emp := testEmployee(1000, 100)

	updated := apply(t, emp, domain.TxnSalaryPayment, -200)

	assert.True(t, updated.Paid.Equal(decimal.NewFromInt(300)))
}

func TestApplyTransaction_RemainingInvariantOverSequence(t *testing.T) {
	emp := testEmployee(1000, 0)
	sequence := []struct {
		txType domain.SalaryTransactionType
		amount int64
	}{
		{domain.TxnSalaryPayment, 300},
		{domain.TxnBonus, 150},
		{domain.TxnOvertime, 100},
		{domain.TxnDeduction, 75},
		{domain.TxnAbsence, 40},
		{domain.TxnSalaryPayment, 5000},
	}

	for _, step := range sequence {
		emp = apply(t, emp, step.txType, step.amount)
		assert.True(t, emp.Remaining.Equal(emp.Salary.Sub(emp.Paid)),
			"after %s: remaining %s, salary %s, paid %s", step.txType, emp.Remaining, emp.Salary, emp.Paid)
		assert.False(t, emp.Paid.IsNegative())
		assert.True(t, emp.Paid.LessThanOrEqual(emp.Salary))
	}
}

func TestApplyTransaction_ReplayIsDeterministic(t *testing.T) {
	run := func() domain.Employee {
		emp := testEmployee(1000, 100)
		emp = apply(t, emp, domain.TxnBonus, 200)
		emp = apply(t, emp, domain.TxnDeduction, 50)
		emp = apply(t, emp, domain.TxnSalaryPayment, 400)
		return emp
	}

	first := run()
	second := run()
	assert.True(t, first.Salary.Equal(second.Salary))
	assert.True(t, first.Paid.Equal(second.Paid))
	assert.True(t, first.Remaining.Equal(second.Remaining))
	assert.Equal(t, first.Overtime, second.Overtime)
	assert.Equal(t, first.Absences, second.Absences)
}

func TestApplyTransaction_DescriptionCarriesTypeAndSignedAmount(t *testing.T) {
	emp := testEmployee(1000, 500)

	_, txn, err := ledger.ApplyTransaction(emp, domain.TxnDeduction, decimal.NewFromInt(25), time.Time{}, testNow)

	require.NoError(t, err)
	assert.Contains(t, txn.Description, string(domain.TxnDeduction))
	assert.Contains(t, txn.Description, "-25")
}
