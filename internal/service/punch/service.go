package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/punch"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	shopRepo     shop.ShopRepository
}

func NewPunchService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository, shopRepo shop.ShopRepository) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		shopRepo:     shopRepo,
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

// PunchIn implements punch.PunchService.
func (s *PunchServiceImpl) PunchIn(ctx context.Context, req punch.PunchInRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	userID, role, err := caller(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if emp.ShopID != req.ShopID {
		return punch.PunchResponse{}, employee.ErrEmployeeShopMatch
	}
	if role == string(user.RoleShopAdmin) {
		if emp.ShopAdminID == nil || *emp.ShopAdminID != userID {
			return punch.PunchResponse{}, user.ErrForbiddenShopAccess
		}
	}

	punchIn, err := time.Parse(time.RFC3339, req.PunchInDatetime)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("invalid punch_in_datetime: %w", err)
	}

	created, err := s.punchRepo.Create(ctx, punch.Punch{
		ShopID:     req.ShopID,
		EmployeeID: req.EmployeeID,
		PunchIn:    punchIn,
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}
	created.EmployeeName = &emp.Name

	return toPunchResponse(created), nil
}

// PunchOut implements punch.PunchService.
func (s *PunchServiceImpl) PunchOut(ctx context.Context, req punch.PunchOutRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	userID, role, err := caller(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	current, err := s.punchRepo.GetByID(ctx, req.PunchID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if role == string(user.RoleShopAdmin) {
		sh, err := s.shopRepo.GetByID(ctx, current.ShopID)
		if err != nil {
			return punch.PunchResponse{}, err
		}
		if sh.AdminID != userID {
			return punch.PunchResponse{}, user.ErrForbiddenShopAccess
		}
	}

	punchOut, err := time.Parse(time.RFC3339, req.PunchOutDatetime)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("invalid punch_out_datetime: %w", err)
	}

	updated, err := s.punchRepo.SetPunchOut(ctx, req.PunchID, punchOut)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	updated.EmployeeName = current.EmployeeName

	return toPunchResponse(updated), nil
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) ([]punch.PunchResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var punches []punch.Punch
	if role == string(user.RoleAdmin) || filter.ShopID != "" {
		if role == string(user.RoleShopAdmin) {
			sh, err := s.shopRepo.GetByID(ctx, filter.ShopID)
			if err != nil {
				return nil, err
			}
			if sh.AdminID != userID {
				return nil, user.ErrForbiddenShopAccess
			}
		}
		punches, err = s.punchRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
	} else {
		shops, err := s.shopRepo.ListByAdminID(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, sh := range shops {
			scoped := filter
			scoped.ShopID = sh.ID
			part, err := s.punchRepo.List(ctx, scoped)
			if err != nil {
				return nil, err
			}
			punches = append(punches, part...)
		}
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, toPunchResponse(p))
	}
	return responses, nil
}

func toPunchResponse(p punch.Punch) punch.PunchResponse {
	resp := punch.PunchResponse{
		ID:           p.ID,
		ShopID:       p.ShopID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		PunchIn:      p.PunchIn.Format(time.RFC3339),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
	if p.PunchOut != nil {
		out := p.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &out
	}
	return resp
}
