// Package ledger holds the pure computations behind stock movements and
// employee salary/attendance records. Every function takes the current
// record plus an event and returns a new record and an appended history
// entry; nothing here performs I/O or reads the wall clock.
package ledger

import "errors"

const (
	// OvertimeHourRate converts overtime pay to overtime hours (currency units per hour).
	OvertimeHourRate = 50
	// ExpectedMonthlyHours is the full-time monthly hour count used by the performance score.
	ExpectedMonthlyHours = 160.0
	// WorkdayHours is the hour credit for one present attendance day.
	WorkdayHours = 8.0
	// PerformanceWindowDays is the trailing attendance window of the performance score.
	PerformanceWindowDays = 30
)

// ErrInvalidQuantity indicates a non-positive or non-numeric movement quantity.
var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// ErrInsufficientStock indicates an outbound movement exceeding available quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidTransaction indicates an unrecognized salary transaction type or zero amount.
var ErrInvalidTransaction = errors.New("invalid salary transaction")
