package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/payout"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

type PayoutHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayoutHandlerImpl struct {
	payoutService payout.PayoutService
}

func NewPayoutHandler(payoutService payout.PayoutService) PayoutHandler {
	return &PayoutHandlerImpl{payoutService: payoutService}
}

// Create implements PayoutHandler.
func (h *PayoutHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq payout.CreatePayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Payout create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	payoutResp, err := h.payoutService.CreatePayout(r.Context(), createReq)
	if err != nil {
		slog.Error("Payout create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payout recorded", payoutResp)
}

// List implements PayoutHandler.
func (h *PayoutHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRangeQuery(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	filter := payout.PayoutFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		From:       from,
		To:         to,
	}

	payouts, err := h.payoutService.ListPayouts(r.Context(), filter)
	if err != nil {
		slog.Error("Payout list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payouts)
}
