package shift

import (
	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID string  `json:"employee_id"`
	CoveredBy  *string `json:"covered_by,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Company    string  `json:"company"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be HH:MM or HH:MM:SS"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be HH:MM or HH:MM:SS"})
	}
	if !company.IsValid(r.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	if r.CoveredBy != nil && validator.IsEmpty(*r.CoveredBy) {
		errs = append(errs, validator.ValidationError{Field: "covered_by", Message: "covering employee id must not be blank"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveShiftRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *ResolveShiftRequest) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return validator.ValidationErrors{
			{Field: "status", Message: "status must be APROBADO or RECHAZADO"},
		}
	}
	return nil
}

type ShiftFilter struct {
	EmployeeID string
	Company    company.Company
	Status     Status
}

type ShiftResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	CoveredBy     *string `json:"covered_by,omitempty"`
	CoveredByName string  `json:"covered_by_name,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Company       string  `json:"company"`
	Status        Status  `json:"status"`
	ResolvedBy    *string `json:"resolved_by,omitempty"`
	ResolvedAt    *string `json:"resolved_at,omitempty"`
}
