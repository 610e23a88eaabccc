package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/payroll"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/punch"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/rota"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	result := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) ListByShopIDs(_ context.Context, shopIDs []string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.employees {
		for _, id := range shopIDs {
			if e.ShopID == id {
				result = append(result, e)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type fakeShopRepo struct {
	shops []shop.Shop
}

func (f *fakeShopRepo) Create(_ context.Context, s shop.Shop) (shop.Shop, error) {
	f.shops = append(f.shops, s)
	return s, nil
}

func (f *fakeShopRepo) GetByID(_ context.Context, id string) (shop.Shop, error) {
	for _, s := range f.shops {
		if s.ID == id {
			return s, nil
		}
	}
	return shop.Shop{}, shop.ErrShopNotFound
}

func (f *fakeShopRepo) List(_ context.Context) ([]shop.Shop, error) {
	return f.shops, nil
}

func (f *fakeShopRepo) ListByAdminID(_ context.Context, adminID string) ([]shop.Shop, error) {
	var result []shop.Shop
	for _, s := range f.shops {
		if s.AdminID == adminID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeShopRepo) Update(_ context.Context, _ shop.Shop) error { return nil }
func (f *fakeShopRepo) Delete(_ context.Context, _ string) error    { return nil }

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) GetByID(_ context.Context, id string) (punch.Punch, error) {
	for _, p := range f.punches {
		if p.ID == id {
			return p, nil
		}
	}
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) SetPunchOut(_ context.Context, id string, out time.Time) (punch.Punch, error) {
	for i, p := range f.punches {
		if p.ID == id {
			f.punches[i].PunchOut = &out
			return f.punches[i], nil
		}
	}
	return punch.Punch{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) List(_ context.Context, _ punch.PunchFilter) ([]punch.Punch, error) {
	return f.punches, nil
}

func (f *fakePunchRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	var result []punch.Punch
	for _, p := range f.punches {
		if p.EmployeeID != employeeID {
			continue
		}
		if p.PunchIn.Before(from) || p.PunchIn.After(to) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

type fakeRotaRepo struct {
	rotas []rota.Rota
}

func (f *fakeRotaRepo) Create(_ context.Context, r rota.Rota) (rota.Rota, error) {
	f.rotas = append(f.rotas, r)
	return r, nil
}

func (f *fakeRotaRepo) GetByID(_ context.Context, id string) (rota.Rota, error) {
	for _, r := range f.rotas {
		if r.ID == id {
			return r, nil
		}
	}
	return rota.Rota{}, rota.ErrRotaNotFound
}

func (f *fakeRotaRepo) List(_ context.Context, _ rota.RotaFilter) ([]rota.Rota, error) {
	return f.rotas, nil
}

func (f *fakeRotaRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]rota.Rota, error) {
	var result []rota.Rota
	for _, r := range f.rotas {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.ShiftDate.Before(from) || r.ShiftDate.After(to) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeRotaRepo) Update(_ context.Context, _ rota.Rota) error { return nil }
func (f *fakeRotaRepo) Delete(_ context.Context, _ string) error    { return nil }

type fixture struct {
	employees *fakeEmployeeRepo
	shops     *fakeShopRepo
	punches   *fakePunchRepo
	rotas     *fakeRotaRepo
	clock     *clockwork.FakeClock
	service   payroll.PayrollService
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		employees: &fakeEmployeeRepo{employees: make(map[string]employee.Employee)},
		shops:     &fakeShopRepo{},
		punches:   &fakePunchRepo{},
		rotas:     &fakeRotaRepo{},
		clock:     clockwork.NewFakeClockAt(now),
	}
	f.service = NewPayrollService(f.employees, f.shops, f.punches, f.rotas, f.clock)
	return f
}

func strPtr(s string) *string                   { return &s }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func hourlyEmployee(id, name string, rate float64) employee.Employee {
	return employee.Employee{
		ID:         id,
		ShopID:     "shop-1",
		Name:       name,
		PayType:    employee.PayTypeHourly,
		HourlyRate: decPtr(decimal.NewFromFloat(rate)),
	}
}

func dailyEmployee(id, name string, rate float64) employee.Employee {
	return employee.Employee{
		ID:             id,
		ShopID:         "shop-1",
		Name:           name,
		PayType:        employee.PayTypeFixedDaily,
		FixedDailyRate: decPtr(decimal.NewFromFloat(rate)),
	}
}

var (
	rangeFrom = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeTo   = time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
)

func TestCalculateForEmployee_HourlyFromPunches(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 12)

	punchIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	punchOut := time.Date(2024, 3, 4, 16, 30, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		ShopID:     "shop-1",
		PunchIn:    punchIn,
		PunchOut:   &punchOut,
	})

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, employee.PayTypeHourly, result.PayType)
	assert.InDelta(t, 7.5, result.TotalHours, 1e-9)
	assert.Equal(t, 1, result.TotalDays)
	assert.True(t, result.Salary.Equal(decimal.NewFromFloat(90)), "salary was %s", result.Salary)
	assert.Nil(t, result.Breakdown)
}

func TestCalculateForEmployee_FixedDailyCountsDays(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = dailyEmployee("emp-1", "Tomasz Kowalski", 80)

	out1 := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out1,
	})
	f.rotas.rotas = append(f.rotas.rotas, rota.Rota{
		ID:             "rota-1",
		EmployeeID:     "emp-1",
		ShiftDate:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		ScheduledStart: strPtr("09:00"),
		ScheduledEnd:   strPtr("17:00"),
	})

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalDays)
	assert.True(t, result.Salary.Equal(decimal.NewFromInt(160)), "salary was %s", result.Salary)
}

func TestCalculateForEmployee_PunchSuppressesRotaSameDay(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	// A two-hour punch on a day that also has an eight-hour rota. The
	// punch record wins outright; the rota contributes nothing.
	out := time.Date(2024, 3, 6, 11, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out,
	})
	f.rotas.rotas = append(f.rotas.rotas, rota.Rota{
		ID:             "rota-1",
		EmployeeID:     "emp-1",
		ShiftDate:      time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		ScheduledStart: strPtr("09:00"),
		ScheduledEnd:   strPtr("17:00"),
	})

	result, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, payroll.SourcePunch, result.Breakdown[0].Source)
	assert.InDelta(t, 2.0, result.TotalHours, 1e-9)
}

func TestCalculateForEmployee_MultiplePunchesSameDaySum(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	morningOut := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	eveningOut := time.Date(2024, 3, 6, 21, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches,
		punch.Punch{
			ID:         "punch-1",
			EmployeeID: "emp-1",
			PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
			PunchOut:   &morningOut,
		},
		punch.Punch{
			ID:         "punch-2",
			EmployeeID: "emp-1",
			PunchIn:    time.Date(2024, 3, 6, 17, 0, 0, 0, time.UTC),
			PunchOut:   &eveningOut,
		},
	)

	result, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 1)
	assert.InDelta(t, 7.0, result.TotalHours, 1e-9)
	assert.Equal(t, 1, result.TotalDays)
	assert.Equal(t, time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), *result.Breakdown[0].PunchIn)
	assert.Equal(t, eveningOut, *result.Breakdown[0].PunchOut)
}

func TestCalculateForEmployee_OpenPunchUsesCurrentTime(t *testing.T) {
	now := time.Date(2024, 3, 6, 13, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
	})

	first, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, first.TotalHours, 1e-9)

	// The same call an hour later credits the extra hour.
	f.clock.Advance(time.Hour)
	second, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, second.TotalHours, 1e-9)
}

func TestCalculateForEmployee_PunchOutBeforeInClampsToZero(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	out := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out,
	})

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Zero(t, result.TotalHours)
	assert.Equal(t, 1, result.TotalDays)
}

func TestCalculateSummary_RotaWithoutTimesCountsAsZeroHourDay(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = dailyEmployee("emp-1", "Tomasz Kowalski", 80)

	f.rotas.rotas = append(f.rotas.rotas, rota.Rota{
		ID:         "rota-1",
		EmployeeID: "emp-1",
		ShiftDate:  time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	})

	result, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 1)
	day := result.Breakdown[0]
	assert.Equal(t, payroll.SourceRotaNoTime, day.Source)
	assert.Zero(t, day.Hours)
	require.NotNil(t, day.Note)
	assert.Equal(t, "No scheduled time", *day.Note)
	assert.Equal(t, 1, result.TotalDays)
	assert.True(t, result.Salary.Equal(decimal.NewFromInt(80)))
}

func TestCalculateSummary_MalformedScheduleTimeSkipsShift(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	f.rotas.rotas = append(f.rotas.rotas,
		rota.Rota{
			ID:             "rota-1",
			EmployeeID:     "emp-1",
			ShiftDate:      time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			ScheduledStart: strPtr("9am"),
			ScheduledEnd:   strPtr("17:00"),
		},
		rota.Rota{
			ID:             "rota-2",
			EmployeeID:     "emp-1",
			ShiftDate:      time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			ScheduledStart: strPtr("10:00"),
			ScheduledEnd:   strPtr("14:00"),
		},
	)

	result, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, "2024-03-08", result.Breakdown[0].Date)
	assert.InDelta(t, 4.0, result.TotalHours, 1e-9)
}

func TestCalculateSummary_OvernightScheduleClampsToZero(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	f.rotas.rotas = append(f.rotas.rotas, rota.Rota{
		ID:             "rota-1",
		EmployeeID:     "emp-1",
		ShiftDate:      time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		ScheduledStart: strPtr("22:00"),
		ScheduledEnd:   strPtr("06:00"),
	})

	result, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 1)
	assert.Zero(t, result.Breakdown[0].Hours)
	assert.Equal(t, 1, result.TotalDays)
}

func TestCalculateSummary_BreakdownOrderedByDate(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	out := time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out,
	})
	f.rotas.rotas = append(f.rotas.rotas,
		rota.Rota{
			ID:             "rota-1",
			EmployeeID:     "emp-1",
			ShiftDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ScheduledStart: strPtr("09:00"),
			ScheduledEnd:   strPtr("17:00"),
		},
		rota.Rota{
			ID:             "rota-2",
			EmployeeID:     "emp-1",
			ShiftDate:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			ScheduledStart: strPtr("09:00"),
			ScheduledEnd:   strPtr("12:00"),
		},
	)

	result, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "2024-03-02", result.Breakdown[0].Date)
	assert.Equal(t, "2024-03-10", result.Breakdown[1].Date)
	assert.Equal(t, "2024-03-15", result.Breakdown[2].Date)
}

func TestCalculateSummary_TotalsMatchCalculateForEmployee(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 11.5)

	out := time.Date(2024, 3, 12, 18, 15, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
		PunchOut:   &out,
	})
	f.rotas.rotas = append(f.rotas.rotas, rota.Rota{
		ID:             "rota-1",
		EmployeeID:     "emp-1",
		ShiftDate:      time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
		ScheduledStart: strPtr("08:00"),
		ScheduledEnd:   strPtr("16:30"),
	})

	calc, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)
	summary, err := f.service.CalculateSummary(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Equal(t, calc.TotalHours, summary.TotalHours)
	assert.Equal(t, calc.TotalDays, summary.TotalDays)
	assert.True(t, calc.Salary.Equal(summary.Salary))
}

func TestCalculateForEmployee_CustomRateOverridesBase(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	emp := hourlyEmployee("emp-1", "Asha Verma", 10)
	emp.CustomHourlyRate = decPtr(decimal.NewFromInt(15))
	f.employees.employees["emp-1"] = emp

	out := time.Date(2024, 3, 6, 13, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out,
	})

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.True(t, result.HourlyRate.Equal(decimal.NewFromInt(15)))
	assert.True(t, result.Salary.Equal(decimal.NewFromInt(60)), "salary was %s", result.Salary)
}

func TestCalculateForEmployee_ZeroCustomRateStillOverrides(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	emp := hourlyEmployee("emp-1", "Asha Verma", 10)
	emp.CustomHourlyRate = decPtr(decimal.Zero)
	f.employees.employees["emp-1"] = emp

	out := time.Date(2024, 3, 6, 13, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out,
	})

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.True(t, result.Salary.IsZero(), "salary was %s", result.Salary)
}

func TestCalculateForEmployee_NoRatesYieldsZeroSalary(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = employee.Employee{
		ID:      "emp-1",
		ShopID:  "shop-1",
		Name:    "Asha Verma",
		PayType: employee.PayTypeHourly,
	}

	out := time.Date(2024, 3, 6, 13, 0, 0, 0, time.UTC)
	f.punches.punches = append(f.punches.punches, punch.Punch{
		ID:         "punch-1",
		EmployeeID: "emp-1",
		PunchIn:    time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		PunchOut:   &out,
	})

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, result.TotalHours, 1e-9)
	assert.True(t, result.Salary.IsZero())
}

func TestCalculateForEmployee_EmptyRange(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	result, err := f.service.CalculateForEmployee(context.Background(), "emp-1", rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Zero(t, result.TotalHours)
	assert.Zero(t, result.TotalDays)
	assert.True(t, result.Salary.IsZero())
}

func TestCalculateForEmployee_UnknownEmployee(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	_, err := f.service.CalculateForEmployee(context.Background(), "missing", rangeFrom, rangeTo)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func claimsContext(t *testing.T, userID string, role string) context.Context {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCalculateForAll_AdminSeesEveryEmployee(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.shops.shops = append(f.shops.shops,
		shop.Shop{ID: "shop-1", Name: "Corner News", AdminID: "admin-1"},
		shop.Shop{ID: "shop-2", Name: "High St Grocers", AdminID: "admin-2"},
	)
	emp1 := hourlyEmployee("emp-1", "Asha Verma", 10)
	emp2 := hourlyEmployee("emp-2", "Tomasz Kowalski", 10)
	emp2.ShopID = "shop-2"
	f.employees.employees["emp-1"] = emp1
	f.employees.employees["emp-2"] = emp2

	ctx := claimsContext(t, "root-1", "Admin")
	results, err := f.service.CalculateForAll(ctx, rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Len(t, results, 2)
}

func TestCalculateForAll_ShopAdminSeesOwnShopsOnly(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.shops.shops = append(f.shops.shops,
		shop.Shop{ID: "shop-1", Name: "Corner News", AdminID: "admin-1"},
		shop.Shop{ID: "shop-2", Name: "High St Grocers", AdminID: "admin-2"},
	)
	emp1 := hourlyEmployee("emp-1", "Asha Verma", 10)
	emp2 := hourlyEmployee("emp-2", "Tomasz Kowalski", 10)
	emp2.ShopID = "shop-2"
	f.employees.employees["emp-1"] = emp1
	f.employees.employees["emp-2"] = emp2

	ctx := claimsContext(t, "admin-1", "ShopAdmin")
	results, err := f.service.CalculateForAll(ctx, rangeFrom, rangeTo)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "emp-1", results[0].EmployeeID)
}

func TestCalculateForAll_ShopAdminWithNoShops(t *testing.T) {
	f := newFixture(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	f.employees.employees["emp-1"] = hourlyEmployee("emp-1", "Asha Verma", 10)

	ctx := claimsContext(t, "admin-9", "ShopAdmin")
	results, err := f.service.CalculateForAll(ctx, rangeFrom, rangeTo)
	require.NoError(t, err)

	assert.Empty(t, results)
}
