package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/payroll"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateIncident(w http.ResponseWriter, r *http.Request)
	GetIncident(w http.ResponseWriter, r *http.Request)
	ListIncidents(w http.ResponseWriter, r *http.Request)
	UpdateIncident(w http.ResponseWriter, r *http.Request)
	DeleteIncident(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRunRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := h.payrollService.GenerateRun(r.Context(), req)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run generated successfully", run)
}

// GetByID implements PayrollHandler.
func (h *PayrollHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	run, err := h.payrollService.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, run)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RunFilter{
		Company: company.Company(r.URL.Query().Get("company")),
	}
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = year
	}

	runs, err := h.payrollService.ListRuns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, runs)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteRun(r.Context(), chi.URLParam(r, "runID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll run deleted successfully", nil)
}

// CreateIncident implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateIncidentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payroll incident decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.CreateIncident(r.Context(), req)
	if err != nil {
		slog.Error("Create payroll incident service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll incident created successfully", created)
}

// GetIncident implements PayrollHandler.
func (h *PayrollHandlerImpl) GetIncident(w http.ResponseWriter, r *http.Request) {
	inc, err := h.payrollService.GetIncident(r.Context(), chi.URLParam(r, "incidentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, inc)
}

// ListIncidents implements PayrollHandler. An employee_id query narrows
// the list to one employee's payroll incidents.
func (h *PayrollHandlerImpl) ListIncidents(w http.ResponseWriter, r *http.Request) {
	filter := payroll.IncidentFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	incidents, err := h.payrollService.ListIncidents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, incidents)
}

// UpdateIncident implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateIncident(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateIncidentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payroll incident decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "incidentID")

	if err := h.payrollService.UpdateIncident(r.Context(), req); err != nil {
		slog.Error("Update payroll incident service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll incident updated successfully", nil)
}

// DeleteIncident implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteIncident(r.Context(), chi.URLParam(r, "incidentID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll incident deleted successfully", nil)
}
