package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/auth"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

// AdminOnly restricts a route to the global Admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ShopAdminOnly restricts a route to ShopAdmin accounts. Used for the
// "my shop" dashboard, which has no meaning for the global Admin.
func ShopAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleShopAdmin) {
			response.HandleError(w, user.ErrShopAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
