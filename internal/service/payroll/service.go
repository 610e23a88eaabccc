package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/payroll"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/punch"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/rota"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/timeutil"
)

// noScheduledTime marks a rota day that counts toward worked days but
// carries no hours.
const noScheduledTime = "No scheduled time"

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shopRepo     shop.ShopRepository
	punchRepo    punch.PunchRepository
	rotaRepo     rota.RotaRepository
	clock        clockwork.Clock
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	shopRepo shop.ShopRepository,
	punchRepo punch.PunchRepository,
	rotaRepo rota.RotaRepository,
	clock clockwork.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		shopRepo:     shopRepo,
		punchRepo:    punchRepo,
		rotaRepo:     rotaRepo,
		clock:        clock,
	}
}

// CalculateForEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateForEmployee(ctx context.Context, employeeID string, from, to time.Time) (payroll.Result, error) {
	return s.compute(ctx, employeeID, from, to, false)
}

// CalculateSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateSummary(ctx context.Context, employeeID string, from, to time.Time) (payroll.Result, error) {
	return s.compute(ctx, employeeID, from, to, true)
}

// CalculateForAll implements payroll.PayrollService. The employee set is
// narrowed by the caller's role; each employee is then computed
// independently, with no state shared between them.
func (s *PayrollServiceImpl) CalculateForAll(ctx context.Context, from, to time.Time) ([]payroll.Result, error) {
	employees, err := s.visibleEmployees(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]payroll.Result, 0, len(employees))
	for _, emp := range employees {
		result, err := s.compute(ctx, emp.ID, from, to, false)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate payroll for employee %s: %w", emp.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *PayrollServiceImpl) visibleEmployees(ctx context.Context) ([]employee.Employee, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role == string(user.RoleAdmin) {
		return s.employeeRepo.List(ctx)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	shops, err := s.shopRepo.ListByAdminID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops for admin: %w", err)
	}

	shopIDs := make([]string, 0, len(shops))
	for _, sh := range shops {
		shopIDs = append(shopIDs, sh.ID)
	}
	if len(shopIDs) == 0 {
		return nil, nil
	}

	return s.employeeRepo.ListByShopIDs(ctx, shopIDs)
}

func (s *PayrollServiceImpl) compute(ctx context.Context, employeeID string, from, to time.Time, withBreakdown bool) (payroll.Result, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Result{}, err
	}

	days, err := s.reconcile(ctx, employeeID, from, to)
	if err != nil {
		return payroll.Result{}, err
	}

	var totalHours float64
	for _, day := range days {
		totalHours += day.Hours
	}
	totalDays := len(days)

	hourlyRate := emp.EffectiveHourlyRate()
	dailyRate := emp.EffectiveDailyRate()

	var salary decimal.Decimal
	switch emp.PayType {
	case employee.PayTypeHourly:
		salary = decimal.NewFromFloat(totalHours).Mul(hourlyRate)
	default: // Fixed Daily
		salary = decimal.NewFromInt(int64(totalDays)).Mul(dailyRate)
	}

	result := payroll.Result{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PayType:      emp.PayType,
		HourlyRate:   hourlyRate,
		DailyRate:    dailyRate,
		TotalHours:   totalHours,
		TotalDays:    totalDays,
		Salary:       salary,
	}
	if withBreakdown {
		result.Breakdown = days
	}

	return result, nil
}

// reconcile merges punch and rota evidence into one record per calendar
// day. Punch evidence strictly wins: any punch on a day, however short,
// suppresses that day's rota-derived record. Days with neither punch nor
// rota produce no record at all. The returned slice is ordered by
// ascending date.
func (s *PayrollServiceImpl) reconcile(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.DailyAttendance, error) {
	punches, err := s.punchRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	days := make(map[string]payroll.DailyAttendance)

	for _, p := range punches {
		punchIn := p.PunchIn
		// An open punch is credited with time elapsed so far, which makes
		// the result depend on the computation instant. Expected behavior,
		// not something to cache away.
		punchOut := s.clock.Now()
		if p.PunchOut != nil {
			punchOut = *p.PunchOut
		}

		hours := timeutil.HoursBetween(punchIn, punchOut)
		key := timeutil.DayKey(punchIn)

		if existing, ok := days[key]; ok {
			existing.Hours += hours
			if punchIn.Before(*existing.PunchIn) {
				existing.PunchIn = &punchIn
			}
			if punchOut.After(*existing.PunchOut) {
				existing.PunchOut = &punchOut
			}
			days[key] = existing
			continue
		}

		days[key] = payroll.DailyAttendance{
			Date:     key,
			Hours:    hours,
			Source:   payroll.SourcePunch,
			PunchIn:  &punchIn,
			PunchOut: &punchOut,
		}
	}

	rotas, err := s.rotaRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list rotas: %w", err)
	}

	for _, r := range rotas {
		key := timeutil.DayKey(r.ShiftDate)
		if _, ok := days[key]; ok {
			continue
		}

		if r.ScheduledStart == nil || r.ScheduledEnd == nil {
			note := noScheduledTime
			days[key] = payroll.DailyAttendance{
				Date:   key,
				Hours:  0,
				Source: payroll.SourceRotaNoTime,
				Note:   &note,
			}
			continue
		}

		start, err := timeutil.AtClockTime(r.ShiftDate, *r.ScheduledStart)
		if err != nil {
			// Malformed schedule time: skip this shift, keep the rest of
			// the range computable.
			continue
		}
		end, err := timeutil.AtClockTime(r.ShiftDate, *r.ScheduledEnd)
		if err != nil {
			continue
		}

		// An end before the start (e.g. an overnight shift recorded on one
		// rota) clamps to zero hours; there is no wrap-to-next-day rule.
		days[key] = payroll.DailyAttendance{
			Date:           key,
			Hours:          timeutil.HoursBetween(start, end),
			Source:         payroll.SourceRota,
			ScheduledStart: r.ScheduledStart,
			ScheduledEnd:   r.ScheduledEnd,
		}
	}

	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ordered := make([]payroll.DailyAttendance, 0, len(keys))
	for _, key := range keys {
		ordered = append(ordered, days[key])
	}

	return ordered, nil
}
