package shop

import (
	"github.com/shopspring/decimal"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type CreateShopRequest struct {
	Name        string           `json:"name"`
	Address     *string          `json:"address,omitempty"`
	Site        *string          `json:"site,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	AdminID     string           `json:"admin_id"`
	Rent        *decimal.Decimal `json:"rent,omitempty"`
	Bills       *decimal.Decimal `json:"bills,omitempty"`
	OpenTime    *string          `json:"open_time,omitempty"`
	CloseTime   *string          `json:"close_time,omitempty"`
}

func (r *CreateShopRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{Field: "admin_id", Message: "is required"})
	}
	if r.OpenTime != nil && !validator.IsValidClockTime(*r.OpenTime) {
		errs = append(errs, validator.ValidationError{Field: "open_time", Message: "must be HH:MM"})
	}
	if r.CloseTime != nil && !validator.IsValidClockTime(*r.CloseTime) {
		errs = append(errs, validator.ValidationError{Field: "close_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShopRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Site        *string          `json:"site,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	AdminID     *string          `json:"admin_id,omitempty"`
	Rent        *decimal.Decimal `json:"rent,omitempty"`
	Bills       *decimal.Decimal `json:"bills,omitempty"`
	OpenTime    *string          `json:"open_time,omitempty"`
	CloseTime   *string          `json:"close_time,omitempty"`
}

func (r *UpdateShopRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OpenTime != nil && !validator.IsValidClockTime(*r.OpenTime) {
		errs = append(errs, validator.ValidationError{Field: "open_time", Message: "must be HH:MM"})
	}
	if r.CloseTime != nil && !validator.IsValidClockTime(*r.CloseTime) {
		errs = append(errs, validator.ValidationError{Field: "close_time", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShopResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	LogoURL     *string         `json:"logo_url,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Site        *string         `json:"site,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	AdminID     string          `json:"admin_id"`
	AdminName   *string         `json:"admin_name,omitempty"`
	AdminEmail  *string         `json:"admin_email,omitempty"`
	Rent        decimal.Decimal `json:"rent"`
	Bills       decimal.Decimal `json:"bills"`
	OpenTime    *string         `json:"open_time,omitempty"`
	CloseTime   *string         `json:"close_time,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
