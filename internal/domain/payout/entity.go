package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payout records an amount actually handed to an employee for a period.
// Payouts are entered by admins as independent facts; they are never
// reconciled against computed salary.
type Payout struct {
	ID          string
	EmployeeID  string
	PayoutDate  time.Time
	AmountPaid  decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}
