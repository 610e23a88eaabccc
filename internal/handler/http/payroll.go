package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/payroll"
	"github.com/shoproster/shopstaff-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CalculateForEmployee(w http.ResponseWriter, r *http.Request)
	SummaryForEmployee(w http.ResponseWriter, r *http.Request)
	CalculateForAll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// payrollRange parses the mandatory from/to query parameters. A bare-date
// "to" covers the whole day so an inclusive [from, to] range of dates
// behaves as users expect.
func payrollRange(r *http.Request) (time.Time, time.Time, error) {
	fromValue := r.URL.Query().Get("from")
	toValue := r.URL.Query().Get("to")
	if fromValue == "" || toValue == "" {
		return time.Time{}, time.Time{}, payroll.ErrInvalidDateRange
	}

	from, _, err := parseTimeParam(fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, payroll.ErrInvalidDateRange
	}
	to, bareDate, err := parseTimeParam(toValue)
	if err != nil {
		return time.Time{}, time.Time{}, payroll.ErrInvalidDateRange
	}
	if bareDate {
		to = endOfDay(to)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, payroll.ErrInvalidDateRange
	}

	return from, to, nil
}

// CalculateForEmployee implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateForEmployee(w http.ResponseWriter, r *http.Request) {
	from, to, err := payrollRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.CalculateForEmployee(r.Context(), chi.URLParam(r, "id"), from, to)
	if err != nil {
		slog.Error("Payroll calculate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.NewResultResponse(result))
}

// SummaryForEmployee implements PayrollHandler.
func (h *PayrollHandlerImpl) SummaryForEmployee(w http.ResponseWriter, r *http.Request) {
	from, to, err := payrollRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.CalculateSummary(r.Context(), chi.URLParam(r, "id"), from, to)
	if err != nil {
		slog.Error("Payroll summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.NewResultResponse(result))
}

// CalculateForAll implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateForAll(w http.ResponseWriter, r *http.Request) {
	from, to, err := payrollRange(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.CalculateForAll(r.Context(), from, to)
	if err != nil {
		slog.Error("Payroll calculate-all service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]payroll.ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, payroll.NewResultResponse(result))
	}

	response.Success(w, responses)
}
