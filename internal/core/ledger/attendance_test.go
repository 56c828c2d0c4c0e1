package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/textile_factory_app/internal/apperrors"
	"github.com/loomworks/textile_factory_app/internal/core/domain"
	"github.com/loomworks/textile_factory_app/internal/core/ledger"
)

func TestMarkAttendance_Present(t *testing.T) {
	emp := testEmployee(1000, 0)
	emp.Status = domain.EmployeeAbsent
	emp.HoursWorked = 16
	day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	updated, record, err := ledger.MarkAttendance(emp, domain.AttendancePresent, day, testNow)

	require.NoError(t, err)
	require.NotNil(t, updated.LastWorkDate)
	assert.Equal(t, day, *updated.LastWorkDate)
	assert.Equal(t, 24.0, updated.HoursWorked)
	assert.Equal(t, domain.EmployeeActive, updated.Status)
	assert.Equal(t, emp.Absences, updated.Absences)

	assert.Equal(t, domain.AttendancePresent, record.Status)
	assert.Equal(t, day, record.Date)
	assert.Equal(t, testNow, record.Timestamp)
	assert.Equal(t, "emp-1", record.EmployeeID)
	assert.NotEmpty(t, record.RecordID)
}

func TestMarkAttendance_Absent(t *testing.T) {
	emp := testEmployee(1000, 0)
	emp.Absences = 1

	updated, record, err := ledger.MarkAttendance(emp, domain.AttendanceAbsent, time.Time{}, testNow)

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Absences)
	assert.Equal(t, domain.EmployeeAbsent, updated.Status)
	assert.Equal(t, emp.HoursWorked, updated.HoursWorked)
	assert.Nil(t, updated.LastWorkDate)
	// Zero date falls back to the injected clock.
	assert.Equal(t, testNow, record.Date)
}

func TestMarkAttendance_UnknownStatus(t *testing.T) {
	_, _, err := ledger.MarkAttendance(testEmployee(1000, 0), domain.AttendanceStatus("sick"), time.Time{}, testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
