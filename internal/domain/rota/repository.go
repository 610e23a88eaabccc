package rota

import (
	"context"
	"time"
)

type RotaRepository interface {
	Create(ctx context.Context, newRota Rota) (Rota, error)
	GetByID(ctx context.Context, id string) (Rota, error)
	List(ctx context.Context, filter RotaFilter) ([]Rota, error)

	// ListByEmployeeAndRange returns rotas whose shift date falls within the
	// inclusive [from, to] range. Used by payroll reconciliation.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Rota, error)

	Update(ctx context.Context, updated Rota) error
	Delete(ctx context.Context, id string) error
}
