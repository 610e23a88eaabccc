package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, newPunch Punch) (Punch, error)
	GetByID(ctx context.Context, id string) (Punch, error)
	SetPunchOut(ctx context.Context, id string, punchOut time.Time) (Punch, error)
	List(ctx context.Context, filter PunchFilter) ([]Punch, error)

	// ListByEmployeeAndRange returns punches whose punch-in timestamp falls
	// within the inclusive [from, to] range. Used by payroll reconciliation.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
}
