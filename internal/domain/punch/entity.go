package punch

import "time"

// Punch is a time-clock event pair. PunchOut is nil while the employee is
// still clocked in; payroll credits an open punch with time elapsed up to
// the instant of computation.
type Punch struct {
	ID         string
	ShopID     string
	EmployeeID string
	PunchIn    time.Time
	PunchOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
