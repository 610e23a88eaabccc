package rota

import "context"

// RotaService defines business logic for shift scheduling
type RotaService interface {
	CreateRota(ctx context.Context, req CreateRotaRequest) (RotaResponse, error)
	ListRotas(ctx context.Context, filter RotaFilter) ([]RotaResponse, error)
	UpdateRota(ctx context.Context, req UpdateRotaRequest) (RotaResponse, error)
	DeleteRota(ctx context.Context, id string) error
}
