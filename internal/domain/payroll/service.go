package payroll

import (
	"context"
	"time"
)

// PayrollService computes salary figures from attendance evidence. All
// operations are read-only: they derive results from the current data
// snapshot and persist nothing. An employee still clocked in is credited
// with time elapsed up to the computation instant, so repeated calls over
// the same range can legitimately differ while a punch is open.
type PayrollService interface {
	// CalculateForEmployee computes totals and salary for one employee
	// over the inclusive [from, to] range.
	CalculateForEmployee(ctx context.Context, employeeID string, from, to time.Time) (Result, error)

	// CalculateSummary is CalculateForEmployee plus the ordered per-day
	// attendance breakdown.
	CalculateSummary(ctx context.Context, employeeID string, from, to time.Time) (Result, error)

	// CalculateForAll fans CalculateForEmployee out over every employee
	// visible to the caller.
	CalculateForAll(ctx context.Context, from, to time.Time) ([]Result, error)
}
