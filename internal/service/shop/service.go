package shop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/service/file"
)

type ShopServiceImpl struct {
	shopRepo    shop.ShopRepository
	userRepo    user.UserRepository
	fileService file.Service
}

func NewShopService(shopRepo shop.ShopRepository, userRepo user.UserRepository, fileService file.Service) shop.ShopService {
	return &ShopServiceImpl{
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		fileService: fileService,
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

// CreateShop implements shop.ShopService.
func (s *ShopServiceImpl) CreateShop(ctx context.Context, req shop.CreateShopRequest) (shop.ShopResponse, error) {
	if err := req.Validate(); err != nil {
		return shop.ShopResponse{}, err
	}

	admin, err := s.userRepo.GetByID(ctx, req.AdminID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return shop.ShopResponse{}, shop.ErrInvalidShopAdmin
		}
		return shop.ShopResponse{}, fmt.Errorf("failed to look up shop admin: %w", err)
	}
	if admin.Role != user.RoleShopAdmin {
		return shop.ShopResponse{}, shop.ErrInvalidShopAdmin
	}

	newShop := shop.Shop{
		Name:        req.Name,
		Address:     req.Address,
		Site:        req.Site,
		PhoneNumber: req.PhoneNumber,
		AdminID:     req.AdminID,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
	}
	if req.Rent != nil {
		newShop.Rent = *req.Rent
	}
	if req.Bills != nil {
		newShop.Bills = *req.Bills
	}

	created, err := s.shopRepo.Create(ctx, newShop)
	if err != nil {
		return shop.ShopResponse{}, err
	}
	created.AdminName = &admin.Name
	created.AdminEmail = &admin.Email

	return toShopResponse(created), nil
}

// GetShop implements shop.ShopService.
func (s *ShopServiceImpl) GetShop(ctx context.Context, id string) (shop.ShopResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return shop.ShopResponse{}, err
	}

	found, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return shop.ShopResponse{}, err
	}

	if role == string(user.RoleShopAdmin) && found.AdminID != userID {
		return shop.ShopResponse{}, user.ErrForbiddenShopAccess
	}

	return toShopResponse(found), nil
}

// ListShops implements shop.ShopService.
func (s *ShopServiceImpl) ListShops(ctx context.Context) ([]shop.ShopResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	var shops []shop.Shop
	if role == string(user.RoleAdmin) {
		shops, err = s.shopRepo.List(ctx)
	} else {
		shops, err = s.shopRepo.ListByAdminID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]shop.ShopResponse, 0, len(shops))
	for _, sh := range shops {
		responses = append(responses, toShopResponse(sh))
	}
	return responses, nil
}

// UpdateShop implements shop.ShopService.
func (s *ShopServiceImpl) UpdateShop(ctx context.Context, req shop.UpdateShopRequest) (shop.ShopResponse, error) {
	if err := req.Validate(); err != nil {
		return shop.ShopResponse{}, err
	}

	current, err := s.shopRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shop.ShopResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Address != nil {
		current.Address = req.Address
	}
	if req.Site != nil {
		current.Site = req.Site
	}
	if req.PhoneNumber != nil {
		current.PhoneNumber = req.PhoneNumber
	}
	if req.Rent != nil {
		current.Rent = *req.Rent
	}
	if req.Bills != nil {
		current.Bills = *req.Bills
	}
	if req.OpenTime != nil {
		current.OpenTime = req.OpenTime
	}
	if req.CloseTime != nil {
		current.CloseTime = req.CloseTime
	}
	if req.AdminID != nil && *req.AdminID != current.AdminID {
		admin, err := s.userRepo.GetByID(ctx, *req.AdminID)
		if err != nil || admin.Role != user.RoleShopAdmin {
			return shop.ShopResponse{}, shop.ErrInvalidShopAdmin
		}
		current.AdminID = admin.ID
		current.AdminName = &admin.Name
		current.AdminEmail = &admin.Email
	}

	if err := s.shopRepo.Update(ctx, current); err != nil {
		return shop.ShopResponse{}, err
	}
	current.UpdatedAt = time.Now()

	return toShopResponse(current), nil
}

// DeleteShop implements shop.ShopService.
func (s *ShopServiceImpl) DeleteShop(ctx context.Context, id string) error {
	return s.shopRepo.Delete(ctx, id)
}

// UploadLogo implements shop.ShopService.
func (s *ShopServiceImpl) UploadLogo(ctx context.Context, shopID string, fileReader io.Reader, filename string) (shop.ShopResponse, error) {
	userID, role, err := caller(ctx)
	if err != nil {
		return shop.ShopResponse{}, err
	}

	current, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return shop.ShopResponse{}, err
	}
	if role == string(user.RoleShopAdmin) && current.AdminID != userID {
		return shop.ShopResponse{}, user.ErrForbiddenShopAccess
	}

	url, err := s.fileService.UploadImage(ctx, "shop-logos", fileReader, filename)
	if err != nil {
		return shop.ShopResponse{}, err
	}

	current.LogoURL = &url
	if err := s.shopRepo.Update(ctx, current); err != nil {
		return shop.ShopResponse{}, err
	}

	return toShopResponse(current), nil
}

func toShopResponse(sh shop.Shop) shop.ShopResponse {
	return shop.ShopResponse{
		ID:          sh.ID,
		Name:        sh.Name,
		LogoURL:     sh.LogoURL,
		Address:     sh.Address,
		Site:        sh.Site,
		PhoneNumber: sh.PhoneNumber,
		AdminID:     sh.AdminID,
		AdminName:   sh.AdminName,
		AdminEmail:  sh.AdminEmail,
		Rent:        sh.Rent,
		Bills:       sh.Bills,
		OpenTime:    sh.OpenTime,
		CloseTime:   sh.CloseTime,
		CreatedAt:   sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   sh.UpdatedAt.Format(time.RFC3339),
	}
}
