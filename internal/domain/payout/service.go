package payout

import "context"

// PayoutService defines business logic for payout records
type PayoutService interface {
	// CreatePayout records an amount paid to an employee, enforcing
	// ShopAdmin ownership of the employee's shop
	CreatePayout(ctx context.Context, req CreatePayoutRequest) (PayoutResponse, error)

	// ListPayouts lists payouts filtered by employee and payout-date range
	ListPayouts(ctx context.Context, filter PayoutFilter) ([]PayoutResponse, error)
}
