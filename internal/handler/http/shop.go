package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/dashboard"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/shop"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

const maxLogoUploadSize = 5 << 20 // 5 MiB

type ShopHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type ShopHandlerImpl struct {
	shopService      shop.ShopService
	dashboardService dashboard.DashboardService
}

func NewShopHandler(shopService shop.ShopService, dashboardService dashboard.DashboardService) ShopHandler {
	return &ShopHandlerImpl{
		shopService:      shopService,
		dashboardService: dashboardService,
	}
}

// Create implements ShopHandler.
func (h *ShopHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq shop.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Shop create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	shopResp, err := h.shopService.CreateShop(r.Context(), createReq)
	if err != nil {
		slog.Error("Shop create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shop created", shopResp)
}

// Get implements ShopHandler.
func (h *ShopHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	shopResp, err := h.shopService.GetShop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shopResp)
}

// List implements ShopHandler.
func (h *ShopHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopService.ListShops(r.Context())
	if err != nil {
		slog.Error("Shop list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shops)
}

// Update implements ShopHandler.
func (h *ShopHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq shop.UpdateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Shop update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	shopResp, err := h.shopService.UpdateShop(r.Context(), updateReq)
	if err != nil {
		slog.Error("Shop update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shop updated", shopResp)
}

// Delete implements ShopHandler.
func (h *ShopHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shopService.DeleteShop(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Shop delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shop deleted", nil)
}

// UploadLogo implements ShopHandler.
func (h *ShopHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "logo file is required", nil)
		return
	}
	defer file.Close()

	shopResp, err := h.shopService.UploadLogo(r.Context(), chi.URLParam(r, "id"), file, header.Filename)
	if err != nil {
		slog.Error("Shop logo upload service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded", shopResp)
}

// Dashboard implements ShopHandler.
func (h *ShopHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashResp, err := h.dashboardService.GetDashboardForShop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Shop dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashResp)
}
