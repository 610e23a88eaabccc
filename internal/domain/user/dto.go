package user

import (
	"time"

	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

type CreateShopAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CreateShopAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateShopAdminRequest patches a ShopAdmin account. Nil fields are
// left unchanged; a non-nil password is re-hashed.
type UpdateShopAdminRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateShopAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminShopInfo is the shop attached to a ShopAdmin in the
// admins-with-shops listing.
type AdminShopInfo struct {
	ShopID      string  `json:"shop_id"`
	ShopName    string  `json:"shop_name"`
	ShopLogo    *string `json:"shop_logo,omitempty"`
	ShopAddress *string `json:"shop_address,omitempty"`
}

// UserWithShopResponse carries a nil Shop for accounts with no shop
// assigned, which is how the frontend spots unassigned ShopAdmins.
type UserWithShopResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  string         `json:"role"`
	Shop  *AdminShopInfo `json:"shop"`
}

type SystemStatsResponse struct {
	TotalShops       int `json:"total_shops"`
	TotalShopAdmins  int `json:"total_shop_admins"`
	TotalEmployees   int `json:"total_employees"`
	RotasThisWeek    int `json:"rotas_this_week"`
	PunchesToday     int `json:"punches_today"`
	PayoutsThisMonth int `json:"payouts_this_month"`
}
