package dashboard

import (
	"github.com/shopspring/decimal"
)

// UpcomingShift is one scheduled shift in the dashboard's 7-day lookahead.
type UpcomingShift struct {
	RotaID         string  `json:"rota_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	ShiftDate      string  `json:"shift_date"`
	ScheduledStart *string `json:"scheduled_start,omitempty"`
	ScheduledEnd   *string `json:"scheduled_end,omitempty"`
}

type DashboardResponse struct {
	TotalEmployees int             `json:"total_employees"`
	TodaysPunches  int             `json:"todays_punches"`
	UpcomingShifts []UpcomingShift `json:"upcoming_shifts"`
	WeeklyPayout   decimal.Decimal `json:"weekly_payout"`
}
