package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/dashboard"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/timeutil"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context, shopID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE shop_id = $1`, shopID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// CountPunchesBetween implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPunchesBetween(ctx context.Context, shopID string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM punches
		WHERE shop_id = $1 AND punch_in >= $2 AND punch_in <= $3
	`

	var count int
	if err := q.QueryRow(ctx, query, shopID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count punches: %w", err)
	}

	return count, nil
}

// ListUpcomingShifts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListUpcomingShifts(ctx context.Context, shopID string, from, to time.Time, limit int) ([]dashboard.UpcomingShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, e.name, r.shift_date, r.scheduled_start, r.scheduled_end
		FROM rotas r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.shop_id = $1 AND r.shift_date >= $2 AND r.shift_date <= $3
		ORDER BY r.shift_date, r.scheduled_start NULLS LAST
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, shopID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming shifts: %w", err)
	}
	defer rows.Close()

	var shifts []dashboard.UpcomingShift
	for rows.Next() {
		var s dashboard.UpcomingShift
		var shiftDate time.Time
		err := rows.Scan(&s.RotaID, &s.EmployeeID, &s.EmployeeName, &shiftDate, &s.ScheduledStart, &s.ScheduledEnd)
		if err != nil {
			return nil, err
		}
		s.ShiftDate = shiftDate.Format(timeutil.DayKeyLayout)
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// SumPayoutsBetween implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) SumPayoutsBetween(ctx context.Context, shopID string, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(p.amount_paid), 0)
		FROM payouts p
		JOIN employees e ON e.id = p.employee_id
		WHERE e.shop_id = $1 AND p.payout_date >= $2 AND p.payout_date <= $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, shopID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payouts: %w", err)
	}

	return total, nil
}
