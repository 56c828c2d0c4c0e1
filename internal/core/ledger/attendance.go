package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
)

// MarkAttendance appends one attendance event to an employee record.
// A present day credits a fixed workday of hours and refreshes the last work
// date; an absent day increments the absence counter. Note that an absence
// recorded here and an absence-type salary transaction both increment the
// same counter; callers must not route a single real-world absence through
// both paths.
func MarkAttendance(emp domain.Employee, status domain.AttendanceStatus, date time.Time, now time.Time) (domain.Employee, domain.AttendanceRecord, error) {
	if date.IsZero() {
		date = now
	}

	updated := emp
	switch status {
	case domain.AttendancePresent:
		d := date
		updated.LastWorkDate = &d
		updated.HoursWorked += WorkdayHours
		updated.Status = domain.EmployeeActive
	case domain.AttendanceAbsent:
		updated.Absences++
		updated.Status = domain.EmployeeAbsent
	default:
		return domain.Employee{}, domain.AttendanceRecord{}, fmt.Errorf("%w: unknown attendance status %q", apperrors.ErrValidation, status)
	}

	record := domain.AttendanceRecord{
		RecordID:   uuid.NewString(),
		EmployeeID: emp.EmployeeID,
		Date:       date,
		Status:     status,
		Timestamp:  now,
	}
	return updated, record, nil
}
