package rota

import (
	"time"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type CreateRotaRequest struct {
	ShopID         string  `json:"shop_id"`
	EmployeeID     string  `json:"employee_id"`
	ShiftDate      string  `json:"shift_date"` // YYYY-MM-DD
	ScheduledStart *string `json:"scheduled_start,omitempty"`
	ScheduledEnd   *string `json:"scheduled_end,omitempty"`
	Note           *string `json:"note,omitempty"`
}

func (r *CreateRotaRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShopID) {
		errs = append(errs, validator.ValidationError{Field: "shop_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "shift_date", Message: "must be YYYY-MM-DD"})
	}
	if r.ScheduledStart != nil && !validator.IsValidClockTime(*r.ScheduledStart) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_start", Message: "must be HH:MM"})
	}
	if r.ScheduledEnd != nil && !validator.IsValidClockTime(*r.ScheduledEnd) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRotaRequest struct {
	ID             string
	ShiftDate      *string `json:"shift_date,omitempty"`
	ScheduledStart *string `json:"scheduled_start,omitempty"`
	ScheduledEnd   *string `json:"scheduled_end,omitempty"`
	Note           *string `json:"note,omitempty"`
}

func (r *UpdateRotaRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftDate != nil {
		if _, ok := validator.IsValidDate(*r.ShiftDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "shift_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.ScheduledStart != nil && !validator.IsValidClockTime(*r.ScheduledStart) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_start", Message: "must be HH:MM"})
	}
	if r.ScheduledEnd != nil && !validator.IsValidClockTime(*r.ScheduledEnd) {
		errs = append(errs, validator.ValidationError{Field: "scheduled_end", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RotaFilter narrows rota listings; zero values mean "no filter".
type RotaFilter struct {
	ShopID     string
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

type RotaResponse struct {
	ID             string  `json:"id"`
	ShopID         string  `json:"shop_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	ShiftDate      string  `json:"shift_date"`
	ScheduledStart *string `json:"scheduled_start,omitempty"`
	ScheduledEnd   *string `json:"scheduled_end,omitempty"`
	Note           *string `json:"note,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
