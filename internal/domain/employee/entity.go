package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a shop worker. Employees do not have login accounts; they are
// records managed by the shop's admin. The rate fields form the compensation
// configuration consumed by payroll: per pay type, the Custom* override wins
// over the base rate when set, and a missing rate counts as zero.
type Employee struct {
	ID          string
	ShopID      string
	Name        string
	ShareCode   *string
	NINumber    *string
	Address     *string
	PhoneNumber *string
	ShiftTiming *string
	PayType     PayType

	HourlyRate     *decimal.Decimal
	FixedDailyRate *decimal.Decimal

	// Per-employee overrides set by the shop admin
	CustomHourlyRate *decimal.Decimal
	CustomDailyRate  *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ShopName    *string
	ShopAdminID *string
}

type PayType string

const (
	PayTypeHourly     PayType = "Hourly"
	PayTypeFixedDaily PayType = "Fixed Daily"
)

var PayTypeValues = []string{
	string(PayTypeHourly),
	string(PayTypeFixedDaily),
}

// EffectiveHourlyRate resolves the hourly rate: custom override if set,
// else base rate, else zero. A custom rate of zero is honored as zero.
func (e Employee) EffectiveHourlyRate() decimal.Decimal {
	if e.CustomHourlyRate != nil {
		return *e.CustomHourlyRate
	}
	if e.HourlyRate != nil {
		return *e.HourlyRate
	}
	return decimal.Zero
}

// EffectiveDailyRate resolves the fixed-daily rate with the same two-level
// fallback, independent of the hourly fields.
func (e Employee) EffectiveDailyRate() decimal.Decimal {
	if e.CustomDailyRate != nil {
		return *e.CustomDailyRate
	}
	if e.FixedDailyRate != nil {
		return *e.FixedDailyRate
	}
	return decimal.Zero
}
