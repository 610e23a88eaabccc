package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns every account, Admin roles first, then newest first.
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, updated User) (User, error)
	Delete(ctx context.Context, id string) error
}

// SystemStatsRepository backs the global Admin stats endpoint with
// whole-database counts.
type SystemStatsRepository interface {
	CountShops(ctx context.Context) (int, error)
	CountUsersByRole(ctx context.Context, role Role) (int, error)
	CountEmployees(ctx context.Context) (int, error)
	// CountRotasBetween counts shifts with from <= shift_date < to.
	CountRotasBetween(ctx context.Context, from, to time.Time) (int, error)
	CountPunchesBetween(ctx context.Context, from, to time.Time) (int, error)
	CountPayoutsBetween(ctx context.Context, from, to time.Time) (int, error)
}
