package shop

import (
	"context"
	"io"
)

// ShopService defines business logic for shop management
type ShopService interface {
	// CreateShop creates a shop assigned to an existing ShopAdmin (Admin only)
	CreateShop(ctx context.Context, req CreateShopRequest) (ShopResponse, error)

	// GetShop retrieves a single shop, enforcing ShopAdmin ownership
	GetShop(ctx context.Context, id string) (ShopResponse, error)

	// ListShops returns all shops for Admin, owned shops for ShopAdmin
	ListShops(ctx context.Context) ([]ShopResponse, error)

	// UpdateShop updates shop fields and optionally reassigns the ShopAdmin (Admin only)
	UpdateShop(ctx context.Context, req UpdateShopRequest) (ShopResponse, error)

	// DeleteShop removes a shop (Admin only)
	DeleteShop(ctx context.Context, id string) error

	// UploadLogo stores a shop logo image and updates the shop record
	UploadLogo(ctx context.Context, shopID string, file io.Reader, filename string) (ShopResponse, error)
}
