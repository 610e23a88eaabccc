package employee

import (
	"github.com/shopspring/decimal"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name             string           `json:"name"`
	ShareCode        *string          `json:"share_code,omitempty"`
	NINumber         *string          `json:"ni_number,omitempty"`
	Address          *string          `json:"address,omitempty"`
	PhoneNumber      *string          `json:"phone_number,omitempty"`
	ShiftTiming      *string          `json:"shift_timing,omitempty"`
	PayType          string           `json:"pay_type"`
	HourlyRate       *decimal.Decimal `json:"hourly_rate,omitempty"`
	FixedDailyRate   *decimal.Decimal `json:"fixed_daily_rate,omitempty"`
	CustomHourlyRate *decimal.Decimal `json:"custom_hourly_rate,omitempty"`
	CustomDailyRate  *decimal.Decimal `json:"custom_daily_rate,omitempty"`
	ShopID           string           `json:"shop_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.ShopID) {
		errs = append(errs, validator.ValidationError{Field: "shop_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.PayType, PayTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be Hourly or Fixed Daily"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.FixedDailyRate != nil && r.FixedDailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_daily_rate", Message: "must be non-negative"})
	}
	if r.CustomHourlyRate != nil && r.CustomHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "custom_hourly_rate", Message: "must be non-negative"})
	}
	if r.CustomDailyRate != nil && r.CustomDailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "custom_daily_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest updates only the fields present in the request.
// A rate override of zero is a legitimate value, so clearing an override
// back to the base rate is an explicit flag rather than a null/zero check.
type UpdateEmployeeRequest struct {
	ID                    string
	Name                  *string          `json:"name,omitempty"`
	ShareCode             *string          `json:"share_code,omitempty"`
	NINumber              *string          `json:"ni_number,omitempty"`
	Address               *string          `json:"address,omitempty"`
	PhoneNumber           *string          `json:"phone_number,omitempty"`
	ShiftTiming           *string          `json:"shift_timing,omitempty"`
	PayType               *string          `json:"pay_type,omitempty"`
	HourlyRate            *decimal.Decimal `json:"hourly_rate,omitempty"`
	FixedDailyRate        *decimal.Decimal `json:"fixed_daily_rate,omitempty"`
	CustomHourlyRate      *decimal.Decimal `json:"custom_hourly_rate,omitempty"`
	CustomDailyRate       *decimal.Decimal `json:"custom_daily_rate,omitempty"`
	ClearCustomHourlyRate bool             `json:"clear_custom_hourly_rate,omitempty"`
	ClearCustomDailyRate  bool             `json:"clear_custom_daily_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PayType != nil && !validator.IsInSlice(*r.PayType, PayTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be Hourly or Fixed Daily"})
	}
	for field, rate := range map[string]*decimal.Decimal{
		"hourly_rate":        r.HourlyRate,
		"fixed_daily_rate":   r.FixedDailyRate,
		"custom_hourly_rate": r.CustomHourlyRate,
		"custom_daily_rate":  r.CustomDailyRate,
	} {
		if rate != nil && rate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	ShopID           string           `json:"shop_id"`
	ShopName         *string          `json:"shop_name,omitempty"`
	Name             string           `json:"name"`
	ShareCode        *string          `json:"share_code,omitempty"`
	NINumber         *string          `json:"ni_number,omitempty"`
	Address          *string          `json:"address,omitempty"`
	PhoneNumber      *string          `json:"phone_number,omitempty"`
	ShiftTiming      *string          `json:"shift_timing,omitempty"`
	PayType          string           `json:"pay_type"`
	HourlyRate       *decimal.Decimal `json:"hourly_rate,omitempty"`
	FixedDailyRate   *decimal.Decimal `json:"fixed_daily_rate,omitempty"`
	CustomHourlyRate *decimal.Decimal `json:"custom_hourly_rate,omitempty"`
	CustomDailyRate  *decimal.Decimal `json:"custom_daily_rate,omitempty"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}
