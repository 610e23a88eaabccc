package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shopRepo     shop.ShopRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, shopRepo shop.ShopRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
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

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, role, err := caller(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	sh, err := s.shopRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role == string(user.RoleShopAdmin) && sh.AdminID != userID {
		return employee.EmployeeResponse{}, user.ErrForbiddenShopAccess
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ShopID:           req.ShopID,
		Name:             req.Name,
		ShareCode:        req.ShareCode,
		NINumber:         req.NINumber,
		Address:          req.Address,
		PhoneNumber:      req.PhoneNumber,
		ShiftTiming:      req.ShiftTiming,
		PayType:          employee.PayType(req.PayType),
		HourlyRate:       req.HourlyRate,
		FixedDailyRate:   req.FixedDailyRate,
		CustomHourlyRate: req.CustomHourlyRate,
		CustomDailyRate:  req.CustomDailyRate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created.ShopName = &sh.Name

	return toEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.fetchOwned(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(found), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if role == string(user.RoleAdmin) {
		employees, err = s.employeeRepo.List(ctx)
	} else {
		var shops []shop.Shop
		shops, err = s.shopRepo.ListByAdminID(ctx, userID)
		if err != nil {
			return nil, err
		}
		shopIDs := make([]string, 0, len(shops))
		for _, sh := range shops {
			shopIDs = append(shopIDs, sh.ID)
		}
		employees, err = s.employeeRepo.ListByShopIDs(ctx, shopIDs)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toEmployeeResponse(e))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.fetchOwned(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.ShareCode != nil {
		current.ShareCode = req.ShareCode
	}
	if req.NINumber != nil {
		current.NINumber = req.NINumber
	}
	if req.Address != nil {
		current.Address = req.Address
	}
	if req.PhoneNumber != nil {
		current.PhoneNumber = req.PhoneNumber
	}
	if req.ShiftTiming != nil {
		current.ShiftTiming = req.ShiftTiming
	}
	if req.PayType != nil {
		current.PayType = employee.PayType(*req.PayType)
	}
	if req.HourlyRate != nil {
		current.HourlyRate = req.HourlyRate
	}
	if req.FixedDailyRate != nil {
		current.FixedDailyRate = req.FixedDailyRate
	}
	if req.CustomHourlyRate != nil {
		current.CustomHourlyRate = req.CustomHourlyRate
	}
	if req.CustomDailyRate != nil {
		current.CustomDailyRate = req.CustomDailyRate
	}
	// Clearing an override reverts payroll to the base rate. A separate
	// flag because an override of zero is itself a valid value.
	if req.ClearCustomHourlyRate {
		current.CustomHourlyRate = nil
	}
	if req.ClearCustomDailyRate {
		current.CustomDailyRate = nil
	}

	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, err
	}
	current.UpdatedAt = time.Now()

	return toEmployeeResponse(current), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.fetchOwned(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// fetchOwned loads an employee and enforces that a ShopAdmin caller
// administers the employee's shop.
func (s *EmployeeServiceImpl) fetchOwned(ctx context.Context, id string) (employee.Employee, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if role == string(user.RoleShopAdmin) {
		if found.ShopAdminID == nil || *found.ShopAdminID != userID {
			return employee.Employee{}, employee.ErrUnauthorized
		}
	}

	return found, nil
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               e.ID,
		ShopID:           e.ShopID,
		ShopName:         e.ShopName,
		Name:             e.Name,
		ShareCode:        e.ShareCode,
		NINumber:         e.NINumber,
		Address:          e.Address,
		PhoneNumber:      e.PhoneNumber,
		ShiftTiming:      e.ShiftTiming,
		PayType:          string(e.PayType),
		HourlyRate:       e.HourlyRate,
		FixedDailyRate:   e.FixedDailyRate,
		CustomHourlyRate: e.CustomHourlyRate,
		CustomDailyRate:  e.CustomDailyRate,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}
