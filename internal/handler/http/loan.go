package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type LoanHandler interface {
	RegisterMovement(w http.ResponseWriter, r *http.Request)
	GetByEmployee(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LoanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &LoanHandlerImpl{loanService: loanService}
}

// RegisterMovement implements LoanHandler.
func (h *LoanHandlerImpl) RegisterMovement(w http.ResponseWriter, r *http.Request) {
	var req loan.RegisterMovementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register loan movement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	updated, err := h.loanService.RegisterMovement(r.Context(), req)
	if err != nil {
		slog.Error("Register loan movement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Movement registered successfully", updated)
}

// GetByEmployee implements LoanHandler.
func (h *LoanHandlerImpl) GetByEmployee(w http.ResponseWriter, r *http.Request) {
	l, err := h.loanService.GetEmployeeLoan(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, l)
}

// List implements LoanHandler.
func (h *LoanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.ListLoans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, loans)
}
