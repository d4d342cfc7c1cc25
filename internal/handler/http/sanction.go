package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/sanction"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type SanctionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SanctionHandlerImpl struct {
	sanctionService sanction.SanctionService
}

func NewSanctionHandler(sanctionService sanction.SanctionService) SanctionHandler {
	return &SanctionHandlerImpl{sanctionService: sanctionService}
}

// Create implements SanctionHandler.
func (h *SanctionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sanction.CreateSanctionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create sanction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.sanctionService.CreateSanction(r.Context(), req)
	if err != nil {
		slog.Error("Create sanction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sanction created successfully", created)
}

// GetByID implements SanctionHandler.
func (h *SanctionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	s, err := h.sanctionService.GetSanction(r.Context(), chi.URLParam(r, "sanctionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// List implements SanctionHandler. An employee_id query narrows the list
// to one employee's sanctions.
func (h *SanctionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		sanctions, err := h.sanctionService.ListEmployeeSanctions(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, sanctions)
		return
	}

	sanctions, err := h.sanctionService.ListSanctions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sanctions)
}

// Update implements SanctionHandler.
func (h *SanctionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sanction.UpdateSanctionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update sanction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "sanctionID")

	if err := h.sanctionService.UpdateSanction(r.Context(), req); err != nil {
		slog.Error("Update sanction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sanction updated successfully", nil)
}

// Delete implements SanctionHandler.
func (h *SanctionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sanctionService.DeleteSanction(r.Context(), chi.URLParam(r, "sanctionID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Sanction deleted successfully", nil)
}
