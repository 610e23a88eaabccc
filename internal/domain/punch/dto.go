package punch

import (
	"time"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type PunchInRequest struct {
	ShopID          string `json:"shop_id"`
	EmployeeID      string `json:"employee_id"`
	PunchInDatetime string `json:"punch_in_datetime"` // RFC3339
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShopID) {
		errs = append(errs, validator.ValidationError{Field: "shop_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDateTime(r.PunchInDatetime); !ok {
		errs = append(errs, validator.ValidationError{Field: "punch_in_datetime", Message: "must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchOutRequest struct {
	PunchID          string `json:"punch_id"`
	PunchOutDatetime string `json:"punch_out_datetime"` // RFC3339
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PunchID) {
		errs = append(errs, validator.ValidationError{Field: "punch_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDateTime(r.PunchOutDatetime); !ok {
		errs = append(errs, validator.ValidationError{Field: "punch_out_datetime", Message: "must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchFilter narrows punch listings; zero values mean "no filter".
// The range applies to the punch-in timestamp.
type PunchFilter struct {
	ShopID     string
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

type PunchResponse struct {
	ID           string  `json:"id"`
	ShopID       string  `json:"shop_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PunchIn      string  `json:"punch_in_datetime"`
	PunchOut     *string `json:"punch_out_datetime,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}
