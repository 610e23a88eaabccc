package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/middleware"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/jwt"
)

type RouterHandlers struct {
	Auth      AuthHandler
	Admin     AdminHandler
	Shop      ShopHandler
	Employee  EmployeeHandler
	Rota      RotaHandler
	Punch     PunchHandler
	Payout    PayoutHandler
	Payroll   PayrollHandler
	Dashboard DashboardHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h RouterHandlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shopstaff"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/shops", func(r chi.Router) {
				r.Get("/", h.Shop.List)
				r.Get("/{id}", h.Shop.Get)
				r.Get("/{id}/dashboard", h.Shop.Dashboard)
				r.Post("/{id}/logo", h.Shop.UploadLogo)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shop.Create)
					r.Put("/{id}", h.Shop.Update)
					r.Delete("/{id}", h.Shop.Delete)
				})
			})

			// ShopAdmin account management and global stats
			r.Route("/admins", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Admin.List)
				r.Get("/with-shops", h.Admin.ListWithShops)
				r.Get("/unassigned", h.Admin.ListUnassigned)
				r.Get("/stats", h.Admin.Stats)
				r.Post("/", h.Admin.Create)
				r.Put("/{id}", h.Admin.Update)
				r.Delete("/{id}", h.Admin.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/rotas", func(r chi.Router) {
				r.Get("/", h.Rota.List)
				r.Post("/", h.Rota.Create)
				r.Put("/{id}", h.Rota.Update)
				r.Delete("/{id}", h.Rota.Delete)
			})

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", h.Punch.List)
				r.Post("/in", h.Punch.PunchIn)
				r.Post("/out", h.Punch.PunchOut)
			})

			r.Route("/payouts", func(r chi.Router) {
				r.Get("/", h.Payout.List)
				r.Post("/", h.Payout.Create)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/calc", h.Payroll.CalculateForAll)
				r.Get("/employees/{id}/calc", h.Payroll.CalculateForEmployee)
				r.Get("/employees/{id}/summary", h.Payroll.SummaryForEmployee)
			})

			// ShopAdmin landing page
			r.Group(func(r chi.Router) {
				r.Use(middleware.ShopAdminOnly)
				r.Get("/dashboard", h.Dashboard.MyShop)
			})
		})
	})

	return r
}
