package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/punch"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	p.id, p.shop_id, p.employee_id, p.punch_in, p.punch_out,
	p.created_at, p.updated_at, e.name AS employee_name
`

func scanPunch(row pgx.Row) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(
		&p.ID, &p.ShopID, &p.EmployeeID, &p.PunchIn, &p.PunchOut,
		&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName,
	)
	return p, err
}

func collectPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return punches, nil
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (id, shop_id, employee_id, punch_in, punch_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, shop_id, employee_id, punch_in, punch_out, created_at, updated_at
	`

	if newPunch.ID == "" {
		newPunch.ID = uuid.New().String()
	}

	var created punch.Punch
	err := q.QueryRow(ctx, query,
		newPunch.ID, newPunch.ShopID, newPunch.EmployeeID, newPunch.PunchIn, newPunch.PunchOut,
	).Scan(
		&created.ID, &created.ShopID, &created.EmployeeID, &created.PunchIn,
		&created.PunchOut, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return created, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	found, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to get punch by id: %w", err)
	}

	return found, nil
}

// SetPunchOut implements punch.PunchRepository.
func (r *punchRepositoryImpl) SetPunchOut(ctx context.Context, id string, punchOut time.Time) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET punch_out = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, shop_id, employee_id, punch_in, punch_out, created_at, updated_at
	`

	var updated punch.Punch
	err := q.QueryRow(ctx, query, punchOut, id).Scan(
		&updated.ID, &updated.ShopID, &updated.EmployeeID, &updated.PunchIn,
		&updated.PunchOut, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, fmt.Errorf("failed to set punch out: %w", err)
	}

	return updated, nil
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ShopID != "" {
		args = append(args, filter.ShopID)
		query += ` AND p.shop_id = $` + strconv.Itoa(len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += ` AND p.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND p.punch_in >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND p.punch_in <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY p.punch_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.punch_in >= $2 AND p.punch_in <= $3
		ORDER BY p.punch_in
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for employee: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}
