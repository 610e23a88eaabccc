package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
)

// Source tags where a day's attendance evidence came from. Punch evidence
// always wins over the rota for the same day.
type Source string

const (
	// SourcePunch - hours derived from actual clock punches
	SourcePunch Source = "Punch"
	// SourceRota - hours derived from the scheduled shift times
	SourceRota Source = "Rota"
	// SourceRotaNoTime - a rota day without scheduled times; counts as a
	// worked day with zero hours
	SourceRotaNoTime Source = "RotaNoTime"
)

// DailyAttendance is one reconciled attendance day. It is computed fresh
// per request and never persisted.
type DailyAttendance struct {
	Date   string // YYYY-MM-DD
	Hours  float64
	Source Source

	// Set when Source == SourcePunch. PunchOut is the end time actually
	// used, which is the computation instant for a still-open punch.
	PunchIn  *time.Time
	PunchOut *time.Time

	// Set when Source == SourceRota
	ScheduledStart *string
	ScheduledEnd   *string

	// Set when Source == SourceRotaNoTime
	Note *string
}

// Result is a computed payroll figure for one employee over a range.
// Breakdown is only populated by the summary variant and is ordered by
// ascending date.
type Result struct {
	EmployeeID   string
	EmployeeName string
	PayType      employee.PayType
	HourlyRate   decimal.Decimal // effective: override if set, else base, else zero
	DailyRate    decimal.Decimal // effective, resolved independently of HourlyRate
	TotalHours   float64
	TotalDays    int
	Salary       decimal.Decimal
	Breakdown    []DailyAttendance
}
