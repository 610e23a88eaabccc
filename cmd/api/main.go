package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/shoproster/shopstaff-backend-go/internal/config"
	appHTTP "github.com/shoproster/shopstaff-backend-go/internal/handler/http"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/database"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/jwt"
	"github.com/shoproster/shopstaff-backend-go/internal/pkg/storage"
	"github.com/shoproster/shopstaff-backend-go/internal/repository/postgresql"
	authService "github.com/shoproster/shopstaff-backend-go/internal/service/auth"
	dashboardService "github.com/shoproster/shopstaff-backend-go/internal/service/dashboard"
	employeeService "github.com/shoproster/shopstaff-backend-go/internal/service/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/service/file"
	payoutService "github.com/shoproster/shopstaff-backend-go/internal/service/payout"
	payrollService "github.com/shoproster/shopstaff-backend-go/internal/service/payroll"
	punchService "github.com/shoproster/shopstaff-backend-go/internal/service/punch"
	rotaService "github.com/shoproster/shopstaff-backend-go/internal/service/rota"
	shopService "github.com/shoproster/shopstaff-backend-go/internal/service/shop"
	userService "github.com/shoproster/shopstaff-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	shopRepo := postgresql.NewShopRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	rotaRepo := postgresql.NewRotaRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	statsRepo := postgresql.NewSystemStatsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatalf("Unknown storage type %q", cfg.Storage.Type)
	}

	clock := clockwork.NewRealClock()

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	shopSvc := shopService.NewShopService(shopRepo, userRepo, fileSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shopRepo)
	rotaSvc := rotaService.NewRotaService(rotaRepo, employeeRepo, shopRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, shopRepo)
	payoutSvc := payoutService.NewPayoutService(payoutRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, shopRepo, punchRepo, rotaRepo, clock)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, shopRepo, clock)
	userSvc := userService.NewUserService(userRepo, shopRepo, statsRepo, clock)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, appHTTP.RouterHandlers{
		Auth:      appHTTP.NewAuthHandler(authSvc, jwtService),
		Admin:     appHTTP.NewAdminHandler(userSvc),
		Shop:      appHTTP.NewShopHandler(shopSvc, dashboardSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Rota:      appHTTP.NewRotaHandler(rotaSvc),
		Punch:     appHTTP.NewPunchHandler(punchSvc),
		Payout:    appHTTP.NewPayoutHandler(payoutSvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running at", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
