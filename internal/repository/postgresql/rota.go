package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/rota"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
)

type rotaRepositoryImpl struct {
	db *database.DB
}

func NewRotaRepository(db *database.DB) rota.RotaRepository {
	return &rotaRepositoryImpl{db: db}
}

const rotaColumns = `
	r.id, r.shop_id, r.employee_id, r.shift_date, r.scheduled_start, r.scheduled_end,
	r.note, r.created_at, r.updated_at, e.name AS employee_name
`

func scanRota(row pgx.Row) (rota.Rota, error) {
	var rt rota.Rota
	err := row.Scan(
		&rt.ID, &rt.ShopID, &rt.EmployeeID, &rt.ShiftDate, &rt.ScheduledStart,
		&rt.ScheduledEnd, &rt.Note, &rt.CreatedAt, &rt.UpdatedAt, &rt.EmployeeName,
	)
	return rt, err
}

func collectRotas(rows pgx.Rows) ([]rota.Rota, error) {
	var rotas []rota.Rota
	for rows.Next() {
		rt, err := scanRota(rows)
		if err != nil {
			return nil, err
		}
		rotas = append(rotas, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rotas, nil
}

// Create implements rota.RotaRepository.
func (r *rotaRepositoryImpl) Create(ctx context.Context, newRota rota.Rota) (rota.Rota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rotas (id, shop_id, employee_id, shift_date, scheduled_start, scheduled_end, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, shop_id, employee_id, shift_date, scheduled_start, scheduled_end, note, created_at, updated_at
	`

	if newRota.ID == "" {
		newRota.ID = uuid.New().String()
	}

	var created rota.Rota
	err := q.QueryRow(ctx, query,
		newRota.ID, newRota.ShopID, newRota.EmployeeID, newRota.ShiftDate,
		newRota.ScheduledStart, newRota.ScheduledEnd, newRota.Note,
	).Scan(
		&created.ID, &created.ShopID, &created.EmployeeID, &created.ShiftDate,
		&created.ScheduledStart, &created.ScheduledEnd, &created.Note,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return rota.Rota{}, fmt.Errorf("failed to create rota: %w", err)
	}

	return created, nil
}

// GetByID implements rota.RotaRepository.
func (r *rotaRepositoryImpl) GetByID(ctx context.Context, id string) (rota.Rota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rotaColumns + `
		FROM rotas r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	found, err := scanRota(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rota.Rota{}, rota.ErrRotaNotFound
		}
		return rota.Rota{}, fmt.Errorf("failed to get rota by id: %w", err)
	}

	return found, nil
}

// List implements rota.RotaRepository.
func (r *rotaRepositoryImpl) List(ctx context.Context, filter rota.RotaFilter) ([]rota.Rota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rotaColumns + `
		FROM rotas r
		JOIN employees e ON e.id = r.employee_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.ShopID != "" {
		args = append(args, filter.ShopID)
		query += ` AND r.shop_id = $` + strconv.Itoa(len(args))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += ` AND r.employee_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND r.shift_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND r.shift_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY r.shift_date, r.scheduled_start NULLS LAST`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rotas: %w", err)
	}
	defer rows.Close()

	return collectRotas(rows)
}

// ListByEmployeeAndRange implements rota.RotaRepository.
func (r *rotaRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]rota.Rota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rotaColumns + `
		FROM rotas r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.employee_id = $1 AND r.shift_date >= $2 AND r.shift_date <= $3
		ORDER BY r.shift_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list rotas for employee: %w", err)
	}
	defer rows.Close()

	return collectRotas(rows)
}

// Update implements rota.RotaRepository.
func (r *rotaRepositoryImpl) Update(ctx context.Context, updated rota.Rota) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rotas
		SET shop_id = $1, employee_id = $2, shift_date = $3, scheduled_start = $4,
			scheduled_end = $5, note = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		updated.ShopID, updated.EmployeeID, updated.ShiftDate, updated.ScheduledStart,
		updated.ScheduledEnd, updated.Note, updated.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rota.ErrRotaNotFound
		}
		return fmt.Errorf("failed to update rota: %w", err)
	}

	return nil
}

// Delete implements rota.RotaRepository.
func (r *rotaRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rotas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rota.ErrRotaNotFound
	}

	return nil
}
