package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jonboulle/clockwork"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/dashboard"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
)

const upcomingShiftLimit = 5

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	shopRepo      shop.ShopRepository
	clock         clockwork.Clock
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, shopRepo shop.ShopRepository, clock clockwork.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		shopRepo:      shopRepo,
		clock:         clock,
	}
}

// GetDashboard implements dashboard.DashboardService. The numbers are for
// the caller's shop: for Admin callers the shop is taken from the explicit
// route, so this service resolves the ShopAdmin's own shop only.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ := claims["user_id"].(string)

	shops, err := s.shopRepo.ListByAdminID(ctx, userID)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	if len(shops) == 0 {
		return dashboard.DashboardResponse{}, shop.ErrNoShopForAdmin
	}

	return s.buildFor(ctx, shops[0].ID)
}

// GetDashboardForShop builds the dashboard for an explicit shop, with
// ownership checks for ShopAdmin callers.
func (s *DashboardServiceImpl) GetDashboardForShop(ctx context.Context, shopID string) (dashboard.DashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)

	sh, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	if role == string(user.RoleShopAdmin) && sh.AdminID != userID {
		return dashboard.DashboardResponse{}, user.ErrForbiddenShopAccess
	}

	return s.buildFor(ctx, shopID)
}

func (s *DashboardServiceImpl) buildFor(ctx context.Context, shopID string) (dashboard.DashboardResponse, error) {
	now := s.clock.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	weekAhead := dayStart.AddDate(0, 0, 7)
	weekAgo := dayStart.AddDate(0, 0, -7)

	totalEmployees, err := s.dashboardRepo.CountEmployees(ctx, shopID)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	todaysPunches, err := s.dashboardRepo.CountPunchesBetween(ctx, shopID, dayStart, dayEnd)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	upcoming, err := s.dashboardRepo.ListUpcomingShifts(ctx, shopID, dayStart, weekAhead, upcomingShiftLimit)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	weeklyPayout, err := s.dashboardRepo.SumPayoutsBetween(ctx, shopID, weekAgo, dayEnd)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	if upcoming == nil {
		upcoming = []dashboard.UpcomingShift{}
	}

	return dashboard.DashboardResponse{
		TotalEmployees: totalEmployees,
		TodaysPunches:  todaysPunches,
		UpcomingShifts: upcoming,
		WeeklyPayout:   weeklyPayout,
	}, nil
}
