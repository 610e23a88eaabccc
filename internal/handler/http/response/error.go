package response

import (
	"errors"
	"net/http"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/auth"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/payout"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/payroll"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/punch"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/rota"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Role must be Admin or ShopAdmin", nil)
	case errors.Is(err, user.ErrNotShopAdmin):
		Forbidden(w, "Only ShopAdmin accounts can be managed")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrShopAdminOnly):
		Forbidden(w, "ShopAdmin access required")
	case errors.Is(err, user.ErrForbiddenShopAccess):
		Forbidden(w, "You do not administer this shop")

	// Shop domain errors
	case errors.Is(err, shop.ErrShopNotFound):
		NotFound(w, "Shop not found")
	case errors.Is(err, shop.ErrInvalidShopAdmin):
		BadRequest(w, "admin_id must reference a ShopAdmin account", nil)
	case errors.Is(err, shop.ErrNoShopForAdmin):
		NotFound(w, "No shop assigned to this account")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeShopMatch):
		BadRequest(w, "Employee does not belong to this shop", nil)
	case errors.Is(err, employee.ErrInvalidPayType):
		BadRequest(w, "Invalid pay type", nil)
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "You do not manage this employee")

	// Rota and punch domain errors
	case errors.Is(err, rota.ErrRotaNotFound):
		NotFound(w, "Rota not found")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidDateRange):
		BadRequest(w, "from and to must be valid dates with from <= to", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
