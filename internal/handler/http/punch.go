package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/punch"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// PunchIn implements PunchHandler.
func (h *PunchHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	var punchInReq punch.PunchInRequest
	if err := json.NewDecoder(r.Body).Decode(&punchInReq); err != nil {
		slog.Error("PunchIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResp, err := h.punchService.PunchIn(r.Context(), punchInReq)
	if err != nil {
		slog.Error("PunchIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punched in", punchResp)
}

// PunchOut implements PunchHandler.
func (h *PunchHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	var punchOutReq punch.PunchOutRequest
	if err := json.NewDecoder(r.Body).Decode(&punchOutReq); err != nil {
		slog.Error("PunchOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResp, err := h.punchService.PunchOut(r.Context(), punchOutReq)
	if err != nil {
		slog.Error("PunchOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punched out", punchResp)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRangeQuery(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	filter := punch.PunchFilter{
		ShopID:     r.URL.Query().Get("shop_id"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		From:       from,
		To:         to,
	}

	punches, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("Punch list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}
