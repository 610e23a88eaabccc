package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.shop_id, e.name, e.share_code, e.ni_number, e.address, e.phone_number,
	e.shift_timing, e.pay_type, e.hourly_rate, e.fixed_daily_rate,
	e.custom_hourly_rate, e.custom_daily_rate, e.created_at, e.updated_at,
	s.name AS shop_name, s.admin_id AS shop_admin_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.ShopID, &e.Name, &e.ShareCode, &e.NINumber, &e.Address, &e.PhoneNumber,
		&e.ShiftTiming, &e.PayType, &e.HourlyRate, &e.FixedDailyRate,
		&e.CustomHourlyRate, &e.CustomDailyRate, &e.CreatedAt, &e.UpdatedAt,
		&e.ShopName, &e.ShopAdminID,
	)
	return e, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, shop_id, name, share_code, ni_number, address, phone_number,
			shift_timing, pay_type, hourly_rate, fixed_daily_rate,
			custom_hourly_rate, custom_daily_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, shop_id, name, share_code, ni_number, address, phone_number,
			shift_timing, pay_type, hourly_rate, fixed_daily_rate,
			custom_hourly_rate, custom_daily_rate, created_at, updated_at
	`

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.New().String()
	}

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.ShopID, newEmployee.Name, newEmployee.ShareCode,
		newEmployee.NINumber, newEmployee.Address, newEmployee.PhoneNumber,
		newEmployee.ShiftTiming, newEmployee.PayType, newEmployee.HourlyRate,
		newEmployee.FixedDailyRate, newEmployee.CustomHourlyRate, newEmployee.CustomDailyRate,
	).Scan(
		&created.ID, &created.ShopID, &created.Name, &created.ShareCode,
		&created.NINumber, &created.Address, &created.PhoneNumber,
		&created.ShiftTiming, &created.PayType, &created.HourlyRate,
		&created.FixedDailyRate, &created.CustomHourlyRate, &created.CustomDailyRate,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN shops s ON s.id = e.shop_id
		WHERE e.id = $1
	`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN shops s ON s.id = e.shop_id
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListByShopIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByShopIDs(ctx context.Context, shopIDs []string) ([]employee.Employee, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN shops s ON s.id = e.shop_id
		WHERE e.shop_id = ANY($1)
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, shopIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by shops: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET shop_id = $1, name = $2, share_code = $3, ni_number = $4, address = $5,
			phone_number = $6, shift_timing = $7, pay_type = $8, hourly_rate = $9,
			fixed_daily_rate = $10, custom_hourly_rate = $11, custom_daily_rate = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		updated.ShopID, updated.Name, updated.ShareCode, updated.NINumber, updated.Address,
		updated.PhoneNumber, updated.ShiftTiming, updated.PayType, updated.HourlyRate,
		updated.FixedDailyRate, updated.CustomHourlyRate, updated.CustomDailyRate,
		updated.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
