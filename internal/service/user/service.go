package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo  user.UserRepository
	shopRepo  shop.ShopRepository
	statsRepo user.SystemStatsRepository
	clock     clockwork.Clock
}

func NewUserService(
	userRepo user.UserRepository,
	shopRepo shop.ShopRepository,
	statsRepo user.SystemStatsRepository,
	clock clockwork.Clock,
) user.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		shopRepo:  shopRepo,
		statsRepo: statsRepo,
		clock:     clock,
	}
}

// ListAdmins implements user.UserService.
func (s *UserServiceImpl) ListAdmins(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}

	return responses, nil
}

// ListAdminsWithShops implements user.UserService.
func (s *UserServiceImpl) ListAdminsWithShops(ctx context.Context) ([]user.UserWithShopResponse, error) {
	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	shopByAdmin := make(map[string]user.AdminShopInfo, len(shops))
	for _, sh := range shops {
		shopByAdmin[sh.AdminID] = user.AdminShopInfo{
			ShopID:      sh.ID,
			ShopName:    sh.Name,
			ShopLogo:    sh.LogoURL,
			ShopAddress: sh.Address,
		}
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserWithShopResponse, 0, len(users))
	for _, u := range users {
		resp := user.UserWithShopResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		}
		if info, ok := shopByAdmin[u.ID]; ok {
			resp.Shop = &info
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// ListUnassignedShopAdmins implements user.UserService.
func (s *UserServiceImpl) ListUnassignedShopAdmins(ctx context.Context) ([]user.UserResponse, error) {
	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool, len(shops))
	for _, sh := range shops {
		assigned[sh.AdminID] = true
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0)
	for _, u := range users {
		if u.Role != user.RoleShopAdmin || assigned[u.ID] {
			continue
		}
		responses = append(responses, toUserResponse(u))
	}

	return responses, nil
}

// CreateShopAdmin implements user.UserService.
func (s *UserServiceImpl) CreateShopAdmin(ctx context.Context, req user.CreateShopAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         user.RoleShopAdmin,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create shop admin: %w", err)
	}

	return toUserResponse(created), nil
}

// UpdateShopAdmin implements user.UserService.
func (s *UserServiceImpl) UpdateShopAdmin(ctx context.Context, req user.UpdateShopAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if current.Role != user.RoleShopAdmin {
		return user.UserResponse{}, user.ErrNotShopAdmin
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrEmailExists
		}
		current.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = string(hashed)
	}

	saved, err := s.userRepo.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(saved), nil
}

// DeleteShopAdmin implements user.UserService.
func (s *UserServiceImpl) DeleteShopAdmin(ctx context.Context, id string) error {
	current, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Role != user.RoleShopAdmin {
		return user.ErrNotShopAdmin
	}

	return s.userRepo.Delete(ctx, id)
}

// GetSystemStats implements user.UserService.
func (s *UserServiceImpl) GetSystemStats(ctx context.Context) (user.SystemStatsResponse, error) {
	now := s.clock.Now()

	// Week runs Sunday to Sunday, half-open.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var stats user.SystemStatsResponse
	var err error

	if stats.TotalShops, err = s.statsRepo.CountShops(ctx); err != nil {
		return user.SystemStatsResponse{}, err
	}
	if stats.TotalShopAdmins, err = s.statsRepo.CountUsersByRole(ctx, user.RoleShopAdmin); err != nil {
		return user.SystemStatsResponse{}, err
	}
	if stats.TotalEmployees, err = s.statsRepo.CountEmployees(ctx); err != nil {
		return user.SystemStatsResponse{}, err
	}
	if stats.RotasThisWeek, err = s.statsRepo.CountRotasBetween(ctx, weekStart, weekEnd); err != nil {
		return user.SystemStatsResponse{}, err
	}
	if stats.PunchesToday, err = s.statsRepo.CountPunchesBetween(ctx, dayStart, dayEnd); err != nil {
		return user.SystemStatsResponse{}, err
	}
	if stats.PayoutsThisMonth, err = s.statsRepo.CountPayoutsBetween(ctx, monthStart, monthEnd); err != nil {
		return user.SystemStatsResponse{}, err
	}

	return stats, nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
