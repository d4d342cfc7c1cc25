package contract

import (
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "contract type is required"})
	}
	if r.ExpiryDate != nil && *r.ExpiryDate != "" {
		if _, ok := validator.IsValidDate(*r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateContractRequest struct {
	ID         string  `json:"-"`
	Type       *string `json:"type,omitempty"`
	ExpiryDate *string `json:"expiry_date,omitempty"` // empty string clears the date
}

func (r *UpdateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && validator.IsEmpty(*r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "contract type must not be empty"})
	}
	if r.ExpiryDate != nil && *r.ExpiryDate != "" {
		if _, ok := validator.IsValidDate(*r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "expiry_date", Message: "expiry date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Company       string  `json:"company,omitempty"`
	Type          string  `json:"type"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	Status        string  `json:"status"`
	DaysToExpiry  *int    `json:"days_to_expiry,omitempty"`
}
