package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListExpiring(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ContractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &ContractHandlerImpl{contractService: contractService}
}

// Create implements ContractHandler.
func (h *ContractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.contractService.CreateContract(r.Context(), req)
	if err != nil {
		slog.Error("Create contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract created successfully", created)
}

// GetByID implements ContractHandler.
func (h *ContractHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.contractService.GetContract(r.Context(), chi.URLParam(r, "contractID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, c)
}

// List implements ContractHandler.
func (h *ContractHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contractService.ListContracts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, contracts)
}

// ListExpiring implements ContractHandler.
func (h *ContractHandlerImpl) ListExpiring(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contractService.ListExpiring(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, contracts)
}

// Update implements ContractHandler.
func (h *ContractHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req contract.UpdateContractRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "contractID")

	if err := h.contractService.UpdateContract(r.Context(), req); err != nil {
		slog.Error("Update contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract updated successfully", nil)
}

// Delete implements ContractHandler.
func (h *ContractHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contractService.DeleteContract(r.Context(), chi.URLParam(r, "contractID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contract deleted successfully", nil)
}
