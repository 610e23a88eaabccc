package shop

import "context"

type ShopRepository interface {
	Create(ctx context.Context, newShop Shop) (Shop, error)
	GetByID(ctx context.Context, id string) (Shop, error)
	List(ctx context.Context) ([]Shop, error)
	ListByAdminID(ctx context.Context, adminID string) ([]Shop, error)
	Update(ctx context.Context, updated Shop) error
	Delete(ctx context.Context, id string) error
}
