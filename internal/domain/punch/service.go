package punch

import "context"

// PunchService defines business logic for the time clock
type PunchService interface {
	// PunchIn records a clock-in for an employee of the given shop
	PunchIn(ctx context.Context, req PunchInRequest) (PunchResponse, error)

	// PunchOut closes an open punch
	PunchOut(ctx context.Context, req PunchOutRequest) (PunchResponse, error)

	// ListPunches lists punches filtered by shop, employee and punch-in range
	ListPunches(ctx context.Context, filter PunchFilter) ([]PunchResponse, error)
}
