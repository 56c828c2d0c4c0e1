package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
)

func attendanceOn(daysAgo int, status domain.AttendanceStatus) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		Date:   testNow.AddDate(0, 0, -daysAgo),
		Status: status,
	}
}

func TestPerformanceScore_FallbackWithoutAttendance(t *testing.T) {
	emp := testEmployee(1000, 0)
	emp.Absences = 5

	score := ledger.PerformanceScore(emp, testNow)

	// (30-5)/30 * 100 * 0.7; overtime, hours and pay bonus all zero.
	assert.InDelta(t, 58.333, score, 0.01)
}

func TestPerformanceScore_UsesTrailingWindow(t *testing.T) {
	emp := testEmployee(1000, 0)
	emp.Attendance = []domain.AttendanceRecord{
		attendanceOn(1, domain.AttendancePresent),
		attendanceOn(2, domain.AttendancePresent),
		attendanceOn(3, domain.AttendanceAbsent),
		attendanceOn(4, domain.AttendancePresent),
		// Outside the 30-day window, must be ignored.
		attendanceOn(45, domain.AttendanceAbsent),
		attendanceOn(60, domain.AttendanceAbsent),
	}

	score := ledger.PerformanceScore(emp, testNow)

	// 3 present of 4 in-window days.
	assert.InDelta(t, (3.0/4.0)*100*0.7, score, 0.01)
}

func TestPerformanceScore_FullMarks(t *testing.T) {
	emp := testEmployee(1000, 1000)
	emp.Overtime = 20 // capped at 15 points
	emp.HoursWorked = 200
	emp.Attendance = []domain.AttendanceRecord{
		attendanceOn(1, domain.AttendancePresent),
		attendanceOn(2, domain.AttendancePresent),
	}

	score := ledger.PerformanceScore(emp, testNow)

	// 70 + 15 + 15 + 5 clamps to 100.
	assert.Equal(t, 100.0, score)
}

func TestPerformanceScore_PaidRatioBonus(t *testing.T) {
	emp := testEmployee(1000, 800)
	emp.Attendance = []domain.AttendanceRecord{attendanceOn(1, domain.AttendanceAbsent)}

	withBonus := ledger.PerformanceScore(emp, testNow)

	emp.Paid = decimal.NewFromInt(799)
	withoutBonus := ledger.PerformanceScore(emp, testNow)

	assert.InDelta(t, 5, withBonus-withoutBonus, 0.001)
}

func TestPerformanceScore_AlwaysInRange(t *testing.T) {
	histories := [][]domain.AttendanceRecord{
		nil,
		{attendanceOn(1, domain.AttendanceAbsent)},
		{attendanceOn(1, domain.AttendancePresent), attendanceOn(2, domain.AttendancePresent)},
	}
	for _, attendance := range histories {
		for _, overtime := range []int64{0, 7, 1000} {
			for _, hours := range []float64{0, 80, 10000} {
				for _, absences := range []int64{0, 15, 90} {
					emp := testEmployee(1000, 1000)
					emp.Attendance = attendance
					emp.Overtime = overtime
					emp.HoursWorked = hours
					emp.Absences = absences

					score := ledger.PerformanceScore(emp, testNow)
					assert.GreaterOrEqual(t, score, 0.0)
					assert.LessOrEqual(t, score, 100.0)
				}
			}
		}
	}
}

func TestPerformanceScore_ZeroSalaryNoBonus(t *testing.T) {
	emp := testEmployee(0, 0)
	emp.Attendance = []domain.AttendanceRecord{attendanceOn(1, domain.AttendancePresent)}

	score := ledger.PerformanceScore(emp, testNow)

	assert.InDelta(t, 70, score, 0.01)
}

func TestPerformanceScore_FutureRecordsIgnored(t *testing.T) {
	emp := testEmployee(1000, 0)
	emp.Attendance = []domain.AttendanceRecord{
		{Date: testNow.AddDate(0, 0, 3), Status: domain.AttendancePresent},
	}

	score := ledger.PerformanceScore(emp, testNow)

	// Only the fallback path applies: no in-window records, no absences.
	assert.InDelta(t, 70, score, 0.01)
}
