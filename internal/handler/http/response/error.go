package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/attendance"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/auth"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/incident"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/inventory"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/master"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/payroll"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/product"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/sanction"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/shift"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A rejected attendance import reports every bad line at once.
	var importErrs attendance.ImportErrors
	if errors.As(err, &importErrs) {
		details := make(map[string]string, len(importErrs))
		for _, ie := range importErrs {
			details[fmt.Sprintf("line_%d", ie.Line)] = ie.Message
		}
		BadRequest(w, "Import rejected, no rows were saved", details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInsufficientPermission):
		Forbidden(w, "Insufficient permission")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeReferenced):
		Conflict(w, "Employee still has dependent records; deactivate instead")

	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrContractExists):
		Conflict(w, "Employee already has a contract")

	// Sanction and incident domain errors
	case errors.Is(err, sanction.ErrSanctionNotFound):
		NotFound(w, "Sanction not found")
	case errors.Is(err, incident.ErrIncidentNotFound):
		NotFound(w, "Incident not found")

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, loan.ErrRepaymentExceedsDebt):
		BadRequest(w, "Repayment exceeds the account balance", nil)

	// Inventory domain errors
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Inventory item not found")
	case errors.Is(err, inventory.ErrItemReferenced):
		Conflict(w, "Inventory item is used by a product recipe")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrDuplicateRecipeItem):
		BadRequest(w, "Recipe lists the same inventory item twice", nil)
	case errors.Is(err, product.ErrUnknownInventoryID):
		BadRequest(w, "Recipe references an unknown inventory item", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAlreadyResolved):
		Conflict(w, "Shift already resolved")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already has an open check-in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Employee has no open check-in")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunExists):
		Conflict(w, "Payroll run already exists for this company and period")
	case errors.Is(err, payroll.ErrNoActiveStaff):
		BadRequest(w, "Company has no active employees in the period", nil)
	case errors.Is(err, payroll.ErrIncidentNotFound):
		NotFound(w, "Payroll incident not found")

	// Master data domain errors
	case errors.Is(err, master.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, master.ErrPositionExists):
		Conflict(w, "Position already exists")
	case errors.Is(err, master.ErrPositionReferenced):
		Conflict(w, "Position is still assigned to an employee")
	case errors.Is(err, master.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, master.ErrAccountExists):
		Conflict(w, "Account already exists for this company")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
