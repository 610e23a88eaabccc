package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoproster/shopstaff-backend-go/internal/domain/employee"
	"github.com/shoproster/shopstaff-backend-go/internal/domain/payroll"
)

type stubPayrollService struct {
	lastFrom time.Time
	lastTo   time.Time
	result   payroll.Result
	err      error
}

func (s *stubPayrollService) CalculateForEmployee(_ context.Context, _ string, from, to time.Time) (payroll.Result, error) {
	s.lastFrom, s.lastTo = from, to
	return s.result, s.err
}

func (s *stubPayrollService) CalculateSummary(_ context.Context, _ string, from, to time.Time) (payroll.Result, error) {
	s.lastFrom, s.lastTo = from, to
	return s.result, s.err
}

func (s *stubPayrollService) CalculateForAll(_ context.Context, from, to time.Time) ([]payroll.Result, error) {
	s.lastFrom, s.lastTo = from, to
	return []payroll.Result{s.result}, s.err
}

func newPayrollTestRouter(stub *stubPayrollService) *chi.Mux {
	handler := NewPayrollHandler(stub)
	r := chi.NewRouter()
	r.Get("/payroll/calc", handler.CalculateForAll)
	r.Get("/payroll/employees/{id}/calc", handler.CalculateForEmployee)
	r.Get("/payroll/employees/{id}/summary", handler.SummaryForEmployee)
	return r
}

func TestPayrollCalc_Success(t *testing.T) {
	stub := &stubPayrollService{result: payroll.Result{
		EmployeeID:   "emp-1",
		EmployeeName: "Asha Verma",
		PayType:      employee.PayTypeHourly,
		HourlyRate:   decimal.NewFromInt(12),
		TotalHours:   7.5,
		TotalDays:    1,
		Salary:       decimal.NewFromInt(90),
	}}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/employees/emp-1/calc?from=2024-03-01&to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    payroll.ResultResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "emp-1", body.Data.EmployeeID)
	assert.InDelta(t, 7.5, body.Data.TotalHours, 1e-9)
	assert.True(t, body.Data.Salary.Equal(decimal.NewFromInt(90)))
}

func TestPayrollCalc_BareDateRangeIsInclusive(t *testing.T) {
	stub := &stubPayrollService{}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/employees/emp-1/calc?from=2024-03-01&to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), stub.lastFrom)
	// A bare "to" date must cover the whole day
	assert.Equal(t, 23, stub.lastTo.Hour())
	assert.Equal(t, 31, stub.lastTo.Day())
}

func TestPayrollCalc_MissingRange(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/payroll/employees/emp-1/calc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollCalc_ReversedRange(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/payroll/calc?from=2024-04-01&to=2024-03-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollCalc_TimestampRange(t *testing.T) {
	stub := &stubPayrollService{}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/payroll/employees/emp-1/summary?from=2024-03-01T09:00:00Z&to=2024-03-01T17:00:00Z", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Timestamps are taken as-is, no widening
	assert.Equal(t, time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC), stub.lastTo)
}

func TestPayrollCalc_EmployeeNotFound(t *testing.T) {
	stub := &stubPayrollService{err: employee.ErrEmployeeNotFound}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/employees/missing/calc?from=2024-03-01&to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
