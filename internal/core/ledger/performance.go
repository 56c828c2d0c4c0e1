package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

var paidRatioBonusFloor = decimal.NewFromFloat(0.8)

// PerformanceScore derives a score in [0,100] from the employee's attendance,
// overtime, hours worked, and pay ratio. It is recomputed on every read and
// never persisted, so it always reflects the current ledger state.
//
// Weighting: attendance rate over the trailing 30-day window contributes up
// to 70 points, overtime up to 15 (2 per hour), hours worked against the
// expected monthly total up to 15, plus a 5-point bonus when at least 80% of
// the salary has been paid.
func PerformanceScore(emp domain.Employee, now time.Time) float64 {
	windowStart := now.AddDate(0, 0, -PerformanceWindowDays)

	var totalDays, present int
	for _, rec := range emp.Attendance {
		if rec.Date.Before(windowStart) || rec.Date.After(now) {
			continue
		}
		totalDays++
		if rec.Status == domain.AttendancePresent {
			present++
		}
	}
	if totalDays == 0 {
		// No attendance history in the window: assume a full 30-day month
		// minus the recorded absences.
		totalDays = PerformanceWindowDays
		present = PerformanceWindowDays - int(emp.Absences)
		if present < 0 {
			present = 0
		}
	}

	attendanceRate := 0.0
	if totalDays > 0 {
		attendanceRate = float64(present) / float64(totalDays)
	}
	attendanceScore := attendanceRate * 100 * 0.7

	overtimeScore := float64(emp.Overtime) * 2
	if overtimeScore > 15 {
		overtimeScore = 15
	}

	hoursRatio := emp.HoursWorked / ExpectedMonthlyHours
	if hoursRatio > 1 {
		hoursRatio = 1
	}
	hoursScore := hoursRatio * 100 * 0.15

	bonus := 0.0
	if emp.Salary.IsPositive() && emp.Paid.Div(emp.Salary).GreaterThanOrEqual(paidRatioBonusFloor) {
		bonus = 5
	}

	score := attendanceScore + overtimeScore + hoursScore + bonus
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
