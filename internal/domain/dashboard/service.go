package dashboard

import "context"

// DashboardService aggregates the ShopAdmin landing-page counts for the
// caller's shop: headcount, today's punches, the next week of shifts and
// this week's payout total.
type DashboardService interface {
	// GetDashboard resolves the ShopAdmin caller's own shop
	GetDashboard(ctx context.Context) (DashboardResponse, error)

	// GetDashboardForShop targets an explicit shop, enforcing ownership
	// for ShopAdmin callers
	GetDashboardForShop(ctx context.Context, shopID string) (DashboardResponse, error)
}
