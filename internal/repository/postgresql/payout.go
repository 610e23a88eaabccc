package postgresql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/payout"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
)

type payoutRepositoryImpl struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepositoryImpl{db: db}
}

// Create implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) Create(ctx context.Context, newPayout payout.Payout) (payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payouts (id, employee_id, payout_date, amount_paid, period_start, period_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, payout_date, amount_paid, period_start, period_end, created_at, updated_at
	`

	if newPayout.ID == "" {
		newPayout.ID = uuid.New().String()
	}

	var created payout.Payout
	err := q.QueryRow(ctx, query,
		newPayout.ID, newPayout.EmployeeID, newPayout.PayoutDate, newPayout.AmountPaid,
		newPayout.PeriodStart, newPayout.PeriodEnd,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PayoutDate, &created.AmountPaid,
		&created.PeriodStart, &created.PeriodEnd, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("failed to create payout: %w", err)
	}

	return created, nil
}

// List implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) List(ctx context.Context, filter payout.PayoutFilter) ([]payout.Payout, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.payout_date, p.amount_paid, p.period_start, p.period_end,
			p.created_at, p.updated_at, e.name AS employee_name
		FROM payouts p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += ` AND p.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND p.payout_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND p.payout_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY p.payout_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	defer rows.Close()

	var payouts []payout.Payout
	for rows.Next() {
		var p payout.Payout
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PayoutDate, &p.AmountPaid, &p.PeriodStart,
			&p.PeriodEnd, &p.CreatedAt, &p.UpdatedAt, &p.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}
