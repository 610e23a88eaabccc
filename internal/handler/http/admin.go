package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/user"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListWithShops(w http.ResponseWriter, r *http.Request)
	ListUnassigned(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	userService user.UserService
}

func NewAdminHandler(userService user.UserService) AdminHandler {
	return &AdminHandlerImpl{userService: userService}
}

// List implements AdminHandler.
func (h *AdminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.userService.ListAdmins(r.Context())
	if err != nil {
		slog.Error("Admin list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// ListWithShops implements AdminHandler.
func (h *AdminHandlerImpl) ListWithShops(w http.ResponseWriter, r *http.Request) {
	admins, err := h.userService.ListAdminsWithShops(r.Context())
	if err != nil {
		slog.Error("Admin list-with-shops service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// ListUnassigned implements AdminHandler.
func (h *AdminHandlerImpl) ListUnassigned(w http.ResponseWriter, r *http.Request) {
	admins, err := h.userService.ListUnassignedShopAdmins(r.Context())
	if err != nil {
		slog.Error("Admin list-unassigned service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// Stats implements AdminHandler.
func (h *AdminHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.userService.GetSystemStats(r.Context())
	if err != nil {
		slog.Error("Admin stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Create implements AdminHandler.
func (h *AdminHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateShopAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Admin create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreateShopAdmin(r.Context(), createReq)
	if err != nil {
		slog.Error("Admin create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "ShopAdmin created", created)
}

// Update implements AdminHandler.
func (h *AdminHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateShopAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Admin update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.userService.UpdateShopAdmin(r.Context(), updateReq)
	if err != nil {
		slog.Error("Admin update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements AdminHandler.
func (h *AdminHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteShopAdmin(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Admin delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "ShopAdmin removed", nil)
}
