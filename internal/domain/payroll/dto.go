package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type DailyAttendanceResponse struct {
	Date           string  `json:"date"`
	Hours          float64 `json:"hours"`
	Source         string  `json:"source"`
	PunchIn        *string `json:"punch_in,omitempty"`
	PunchOut       *string `json:"punch_out,omitempty"`
	ScheduledStart *string `json:"scheduled_start,omitempty"`
	ScheduledEnd   *string `json:"scheduled_end,omitempty"`
	Note           *string `json:"note,omitempty"`
}

type ResultResponse struct {
	EmployeeID   string                    `json:"employee_id"`
	EmployeeName string                    `json:"employee_name"`
	PayType      string                    `json:"pay_type"`
	HourlyRate   decimal.Decimal           `json:"hourly_rate"`
	DailyRate    decimal.Decimal           `json:"daily_rate"`
	TotalHours   float64                   `json:"total_hours"`
	TotalDays    int                       `json:"total_days"`
	Salary       decimal.Decimal           `json:"salary"`
	Breakdown    []DailyAttendanceResponse `json:"daily_breakdown,omitempty"`
}

// NewResultResponse maps a computed Result to its response shape.
func NewResultResponse(r Result) ResultResponse {
	resp := ResultResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		PayType:      string(r.PayType),
		HourlyRate:   r.HourlyRate,
		DailyRate:    r.DailyRate,
		TotalHours:   r.TotalHours,
		TotalDays:    r.TotalDays,
		Salary:       r.Salary,
	}

	for _, day := range r.Breakdown {
		resp.Breakdown = append(resp.Breakdown, DailyAttendanceResponse{
			Date:           day.Date,
			Hours:          day.Hours,
			Source:         string(day.Source),
			PunchIn:        timePtrToString(day.PunchIn),
			PunchOut:       timePtrToString(day.PunchOut),
			ScheduledStart: day.ScheduledStart,
			ScheduledEnd:   day.ScheduledEnd,
			Note:           day.Note,
		})
	}

	return resp
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
