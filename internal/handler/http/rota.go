package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/rota"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

type RotaHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RotaHandlerImpl struct {
	rotaService rota.RotaService
}

func NewRotaHandler(rotaService rota.RotaService) RotaHandler {
	return &RotaHandlerImpl{rotaService: rotaService}
}

// Create implements RotaHandler.
func (h *RotaHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq rota.CreateRotaRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Rota create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rotaResp, err := h.rotaService.CreateRota(r.Context(), createReq)
	if err != nil {
		slog.Error("Rota create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rota created", rotaResp)
}

// List implements RotaHandler.
func (h *RotaHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRangeQuery(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	filter := rota.RotaFilter{
		ShopID:     r.URL.Query().Get("shop_id"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		From:       from,
		To:         to,
	}

	rotas, err := h.rotaService.ListRotas(r.Context(), filter)
	if err != nil {
		slog.Error("Rota list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rotas)
}

// Update implements RotaHandler.
func (h *RotaHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq rota.UpdateRotaRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Rota update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	rotaResp, err := h.rotaService.UpdateRota(r.Context(), updateReq)
	if err != nil {
		slog.Error("Rota update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rota updated", rotaResp)
}

// Delete implements RotaHandler.
func (h *RotaHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.rotaService.DeleteRota(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Rota delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rota deleted", nil)
}
