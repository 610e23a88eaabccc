package http

import (
	"log/slog"
	"net/http"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/dashboard"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	MyShop(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// MyShop implements DashboardHandler.
func (h *DashboardHandlerImpl) MyShop(w http.ResponseWriter, r *http.Request) {
	dashResp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashResp)
}
