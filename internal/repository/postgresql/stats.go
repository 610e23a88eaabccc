package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
)

type systemStatsRepositoryImpl struct {
	db *database.DB
}

func NewSystemStatsRepository(db *database.DB) user.SystemStatsRepository {
	return &systemStatsRepositoryImpl{db: db}
}

func (r *systemStatsRepositoryImpl) count(ctx context.Context, label, query string, args ...any) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", label, err)
	}

	return count, nil
}

// CountShops implements user.SystemStatsRepository.
func (r *systemStatsRepositoryImpl) CountShops(ctx context.Context) (int, error) {
	return r.count(ctx, "shops", `SELECT COUNT(*) FROM shops`)
}

// CountUsersByRole implements user.SystemStatsRepository.
func (r *systemStatsRepositoryImpl) CountUsersByRole(ctx context.Context, role user.Role) (int, error) {
	return r.count(ctx, "users", `SELECT COUNT(*) FROM users WHERE role = $1`, role)
}

// CountEmployees implements user.SystemStatsRepository.
func (r *systemStatsRepositoryImpl) CountEmployees(ctx context.Context) (int, error) {
	return r.count(ctx, "employees", `SELECT COUNT(*) FROM employees`)
}

// CountRotasBetween implements user.SystemStatsRepository.
func (r *systemStatsRepositoryImpl) CountRotasBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM rotas WHERE shift_date >= $1 AND shift_date < $2`
	return r.count(ctx, "rotas", query, from, to)
}

// CountPunchesBetween implements user.SystemStatsRepository.
func (r *systemStatsRepositoryImpl) CountPunchesBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM punches WHERE punch_in >= $1 AND punch_in <= $2`
	return r.count(ctx, "punches", query, from, to)
}

// CountPayoutsBetween implements user.SystemStatsRepository.
func (r *systemStatsRepositoryImpl) CountPayoutsBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM payouts WHERE payout_date >= $1 AND payout_date <= $2`
	return r.count(ctx, "payouts", query, from, to)
}
