package payout

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/payout"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/timeutil"
)

type PayoutServiceImpl struct {
	payoutRepo   payout.PayoutRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayoutService(payoutRepo payout.PayoutRepository, employeeRepo employee.EmployeeRepository) payout.PayoutService {
	return &PayoutServiceImpl{
		payoutRepo:   payoutRepo,
		employeeRepo: employeeRepo,
	}
}

func caller(ctx context.Context) (userID string, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ = claims["user_id"].(string)
	role, _ = claims["role"].(string)
	return userID, role, nil
}

// CreatePayout implements payout.PayoutService.
func (s *PayoutServiceImpl) CreatePayout(ctx context.Context, req payout.CreatePayoutRequest) (payout.PayoutResponse, error) {
	if err := req.Validate(); err != nil {
		return payout.PayoutResponse{}, err
	}

	userID, role, err := caller(ctx)
	if err != nil {
		return payout.PayoutResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payout.PayoutResponse{}, err
	}
	if role == string(user.RoleShopAdmin) {
		if emp.ShopAdminID == nil || *emp.ShopAdminID != userID {
			return payout.PayoutResponse{}, employee.ErrUnauthorized
		}
	}

	payoutDate, _ := time.Parse(timeutil.DayKeyLayout, req.PayoutDate)
	periodStart, _ := time.Parse(timeutil.DayKeyLayout, req.PeriodStart)
	periodEnd, _ := time.Parse(timeutil.DayKeyLayout, req.PeriodEnd)

	created, err := s.payoutRepo.Create(ctx, payout.Payout{
		EmployeeID:  req.EmployeeID,
		PayoutDate:  payoutDate,
		AmountPaid:  req.AmountPaid,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	if err != nil {
		return payout.PayoutResponse{}, err
	}
	created.EmployeeName = &emp.Name

	return toPayoutResponse(created), nil
}

// ListPayouts implements payout.PayoutService.
func (s *PayoutServiceImpl) ListPayouts(ctx context.Context, filter payout.PayoutFilter) ([]payout.PayoutResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if role == string(user.RoleShopAdmin) && filter.EmployeeID != "" {
		emp, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp.ShopAdminID == nil || *emp.ShopAdminID != userID {
			return nil, employee.ErrUnauthorized
		}
	}

	payouts, err := s.payoutRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payout.PayoutResponse, 0, len(payouts))
	for _, p := range payouts {
		responses = append(responses, toPayoutResponse(p))
	}
	return responses, nil
}

func toPayoutResponse(p payout.Payout) payout.PayoutResponse {
	return payout.PayoutResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		PayoutDate:   p.PayoutDate.Format(timeutil.DayKeyLayout),
		AmountPaid:   p.AmountPaid,
		PeriodStart:  p.PeriodStart.Format(timeutil.DayKeyLayout),
		PeriodEnd:    p.PeriodEnd.Format(timeutil.DayKeyLayout),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
