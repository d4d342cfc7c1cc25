package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/master"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	GetMasterData(w http.ResponseWriter, r *http.Request)
	CreatePosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	RegisterAccountMovement(w http.ResponseWriter, r *http.Request)
	GetAccountSummary(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// GetMasterData implements MasterHandler.
func (h *MasterHandlerImpl) GetMasterData(w http.ResponseWriter, r *http.Request) {
	data, err := h.masterService.GetMasterData(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, data)
}

// CreatePosition implements MasterHandler.
func (h *MasterHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req master.CreatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create position decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreatePosition(r.Context(), req)
	if err != nil {
		slog.Error("Create position service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Position created successfully", created)
}

// ListPositions implements MasterHandler.
func (h *MasterHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.masterService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, positions)
}

// UpdatePosition implements MasterHandler.
func (h *MasterHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req master.UpdatePositionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update position decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "positionID")

	if err := h.masterService.UpdatePosition(r.Context(), req); err != nil {
		slog.Error("Update position service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Position updated successfully", nil)
}

// DeletePosition implements MasterHandler.
func (h *MasterHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeletePosition(r.Context(), chi.URLParam(r, "positionID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

// CreateAccount implements MasterHandler.
func (h *MasterHandlerImpl) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req master.CreateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create account decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateAccount(r.Context(), req)
	if err != nil {
		slog.Error("Create account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created successfully", created)
}

// GetAccount implements MasterHandler.
func (h *MasterHandlerImpl) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.masterService.GetAccount(r.Context(), chi.URLParam(r, "accountID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, account)
}

// ListAccounts implements MasterHandler.
func (h *MasterHandlerImpl) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.masterService.ListAccounts(r.Context(), company.Company(r.URL.Query().Get("company")))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, accounts)
}

// RegisterAccountMovement implements MasterHandler.
func (h *MasterHandlerImpl) RegisterAccountMovement(w http.ResponseWriter, r *http.Request) {
	var req master.RegisterAccountMovementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register account movement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AccountID = chi.URLParam(r, "accountID")

	updated, err := h.masterService.RegisterAccountMovement(r.Context(), req)
	if err != nil {
		slog.Error("Register account movement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Movement registered successfully", updated)
}

// GetAccountSummary implements MasterHandler.
func (h *MasterHandlerImpl) GetAccountSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.masterService.GetAccountSummary(r.Context(), company.Company(r.URL.Query().Get("company")))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// DeleteAccount implements MasterHandler.
func (h *MasterHandlerImpl) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteAccount(r.Context(), chi.URLParam(r, "accountID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Account deleted successfully", nil)
}
