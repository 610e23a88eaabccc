package payout

import "context"

type PayoutRepository interface {
	Create(ctx context.Context, newPayout Payout) (Payout, error)
	List(ctx context.Context, filter PayoutFilter) ([]Payout, error)
}
