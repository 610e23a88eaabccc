package rota

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/rota"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/timeutil"
)

type RotaServiceImpl struct {
	rotaRepo     rota.RotaRepository
	employeeRepo employee.EmployeeRepository
	shopRepo     shop.ShopRepository
}

func NewRotaService(rotaRepo rota.RotaRepository, employeeRepo employee.EmployeeRepository, shopRepo shop.ShopRepository) rota.RotaService {
	return &RotaServiceImpl{
		rotaRepo:     rotaRepo,
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

// CreateRota implements rota.RotaService.
func (s *RotaServiceImpl) CreateRota(ctx context.Context, req rota.CreateRotaRequest) (rota.RotaResponse, error) {
	if err := req.Validate(); err != nil {
		return rota.RotaResponse{}, err
	}

	userID, role, err := caller(ctx)
	if err != nil {
		return rota.RotaResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return rota.RotaResponse{}, err
	}
	if emp.ShopID != req.ShopID {
		return rota.RotaResponse{}, employee.ErrEmployeeShopMatch
	}
	if role == string(user.RoleShopAdmin) {
		if emp.ShopAdminID == nil || *emp.ShopAdminID != userID {
			return rota.RotaResponse{}, user.ErrForbiddenShopAccess
		}
	}

	shiftDate, _ := time.Parse(timeutil.DayKeyLayout, req.ShiftDate)

	created, err := s.rotaRepo.Create(ctx, rota.Rota{
		ShopID:         req.ShopID,
		EmployeeID:     req.EmployeeID,
		ShiftDate:      shiftDate,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Note:           req.Note,
	})
	if err != nil {
		return rota.RotaResponse{}, err
	}
	created.EmployeeName = &emp.Name

	return toRotaResponse(created), nil
}

// ListRotas implements rota.RotaService.
func (s *RotaServiceImpl) ListRotas(ctx context.Context, filter rota.RotaFilter) ([]rota.RotaResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var rotas []rota.Rota
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
		rotas, err = s.rotaRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
	} else {
		// ShopAdmin with no shop filter: every shop they administer.
		shops, err := s.shopRepo.ListByAdminID(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, sh := range shops {
			scoped := filter
			scoped.ShopID = sh.ID
			part, err := s.rotaRepo.List(ctx, scoped)
			if err != nil {
				return nil, err
			}
			rotas = append(rotas, part...)
		}
	}

	responses := make([]rota.RotaResponse, 0, len(rotas))
	for _, rt := range rotas {
		responses = append(responses, toRotaResponse(rt))
	}
	return responses, nil
}

// UpdateRota implements rota.RotaService.
func (s *RotaServiceImpl) UpdateRota(ctx context.Context, req rota.UpdateRotaRequest) (rota.RotaResponse, error) {
	if err := req.Validate(); err != nil {
		return rota.RotaResponse{}, err
	}

	current, err := s.fetchOwned(ctx, req.ID)
	if err != nil {
		return rota.RotaResponse{}, err
	}

	if req.ShiftDate != nil {
		shiftDate, _ := time.Parse(timeutil.DayKeyLayout, *req.ShiftDate)
		current.ShiftDate = shiftDate
	}
	if req.ScheduledStart != nil {
		current.ScheduledStart = req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		current.ScheduledEnd = req.ScheduledEnd
	}
	if req.Note != nil {
		current.Note = req.Note
	}

	if err := s.rotaRepo.Update(ctx, current); err != nil {
		return rota.RotaResponse{}, err
	}
	current.UpdatedAt = time.Now()

	return toRotaResponse(current), nil
}

// DeleteRota implements rota.RotaService.
func (s *RotaServiceImpl) DeleteRota(ctx context.Context, id string) error {
	if _, err := s.fetchOwned(ctx, id); err != nil {
		return err
	}
	return s.rotaRepo.Delete(ctx, id)
}

func (s *RotaServiceImpl) fetchOwned(ctx context.Context, id string) (rota.Rota, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return rota.Rota{}, err
	}

	current, err := s.rotaRepo.GetByID(ctx, id)
	if err != nil {
		return rota.Rota{}, err
	}

	if role == string(user.RoleShopAdmin) {
		sh, err := s.shopRepo.GetByID(ctx, current.ShopID)
		if err != nil {
			return rota.Rota{}, err
		}
		if sh.AdminID != userID {
			return rota.Rota{}, user.ErrForbiddenShopAccess
		}
	}

	return current, nil
}

func toRotaResponse(rt rota.Rota) rota.RotaResponse {
	return rota.RotaResponse{
		ID:             rt.ID,
		ShopID:         rt.ShopID,
		EmployeeID:     rt.EmployeeID,
		EmployeeName:   rt.EmployeeName,
		ShiftDate:      rt.ShiftDate.Format(timeutil.DayKeyLayout),
		ScheduledStart: rt.ScheduledStart,
		ScheduledEnd:   rt.ScheduledEnd,
		Note:           rt.Note,
		CreatedAt:      rt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      rt.UpdatedAt.Format(time.RFC3339),
	}
}
