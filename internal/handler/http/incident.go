package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/incident"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type IncidentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type IncidentHandlerImpl struct {
	incidentService incident.IncidentService
}

func NewIncidentHandler(incidentService incident.IncidentService) IncidentHandler {
	return &IncidentHandlerImpl{incidentService: incidentService}
}

// Create implements IncidentHandler.
func (h *IncidentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req incident.CreateIncidentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create incident decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.incidentService.CreateIncident(r.Context(), req)
	if err != nil {
		slog.Error("Create incident service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incident created successfully", created)
}

// GetByID implements IncidentHandler.
func (h *IncidentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	inc, err := h.incidentService.GetIncident(r.Context(), chi.URLParam(r, "incidentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, inc)
}

// List implements IncidentHandler. An employee_id query narrows the list
// to one employee's incidents.
func (h *IncidentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		incidents, err := h.incidentService.ListEmployeeIncidents(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, incidents)
		return
	}

	incidents, err := h.incidentService.ListIncidents(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, incidents)
}

// Update implements IncidentHandler.
func (h *IncidentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req incident.UpdateIncidentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update incident decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "incidentID")

	if err := h.incidentService.UpdateIncident(r.Context(), req); err != nil {
		slog.Error("Update incident service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incident updated successfully", nil)
}

// Delete implements IncidentHandler.
func (h *IncidentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.incidentService.DeleteIncident(r.Context(), chi.URLParam(r, "incidentID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Incident deleted successfully", nil)
}
