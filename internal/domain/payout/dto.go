package payout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type CreatePayoutRequest struct {
	EmployeeID  string          `json:"employee_id"`
	PayoutDate  string          `json:"payout_date"`  // YYYY-MM-DD
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	PeriodStart string          `json:"period_start"` // YYYY-MM-DD
	PeriodEnd   string          `json:"period_end"`   // YYYY-MM-DD
}

func (r *CreatePayoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.PayoutDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payout_date", Message: "must be YYYY-MM-DD"})
	}
	if r.AmountPaid.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "amount_paid", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayoutFilter narrows payout listings; the range applies to the payout date.
type PayoutFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

type PayoutResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	PayoutDate   string          `json:"payout_date"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	CreatedAt    string          `json:"created_at"`
}
