package user

import "context"

// UserService is the Admin-only account management surface. Only
// ShopAdmin accounts can be created, updated or deleted through it; the
// global Admin account is read-only here.
type UserService interface {
	ListAdmins(ctx context.Context) ([]UserResponse, error)

	// ListAdminsWithShops joins each account against the shop it runs,
	// Admin accounts first, unassigned ShopAdmins carrying a nil shop.
	ListAdminsWithShops(ctx context.Context) ([]UserWithShopResponse, error)

	// ListUnassignedShopAdmins lists ShopAdmin accounts no shop points at,
	// the candidate pool when assigning a new shop's admin.
	ListUnassignedShopAdmins(ctx context.Context) ([]UserResponse, error)

	CreateShopAdmin(ctx context.Context, req CreateShopAdminRequest) (UserResponse, error)
	UpdateShopAdmin(ctx context.Context, req UpdateShopAdminRequest) (UserResponse, error)
	DeleteShopAdmin(ctx context.Context, id string) error

	GetSystemStats(ctx context.Context) (SystemStatsResponse, error)
}
