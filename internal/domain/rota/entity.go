package rota

import "time"

// Rota is a scheduled shift: an employee planned to work a given calendar
// day. ScheduledStart/ScheduledEnd are local "HH:MM" wall-clock strings and
// may both be absent, in which case the rota is just a day marker.
type Rota struct {
	ID             string
	ShopID         string
	EmployeeID     string
	ShiftDate      time.Time
	ScheduledStart *string
	ScheduledEnd   *string
	Note           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}
