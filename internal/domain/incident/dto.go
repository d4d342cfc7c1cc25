package incident

import (
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type CreateIncidentRequest struct {
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Observation string `json:"observation,omitempty"`
}

func (r *CreateIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateIncidentRequest struct {
	ID          string  `json:"-"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	Observation *string `json:"observation,omitempty"`
}

func (r *UpdateIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not be blank"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IncidentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Observation  string `json:"observation,omitempty"`
}
