package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context, shopID string) (int, error)
	CountPunchesBetween(ctx context.Context, shopID string, from, to time.Time) (int, error)
	ListUpcomingShifts(ctx context.Context, shopID string, from, to time.Time, limit int) ([]UpcomingShift, error)
	SumPayoutsBetween(ctx context.Context, shopID string, from, to time.Time) (decimal.Decimal, error)
}
