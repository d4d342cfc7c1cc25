package employee

import (
	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/incident"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/sanction"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName          string          `json:"full_name"`
	ShortName         string          `json:"short_name"`
	Position          string          `json:"position"`
	Company           string          `json:"company"`
	PaymentType       string          `json:"payment_type"`
	HireDate          string          `json:"hire_date"`
	SocialInsuranceAt *string         `json:"social_insurance_at,omitempty"`
	MonthlyBase       decimal.Decimal `json:"monthly_base"`
	MonthlyBonus      decimal.Decimal `json:"monthly_bonus"`
	Role              string          `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if validator.IsEmpty(r.ShortName) {
		errs = append(errs, validator.ValidationError{Field: "short_name", Message: "short name is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if !company.IsValid(r.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	if !IsValidPaymentType(r.PaymentType) {
		errs = append(errs, validator.ValidationError{Field: "payment_type", Message: "payment type must be B, S or E"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date must be YYYY-MM-DD"})
	}
	if r.SocialInsuranceAt != nil && *r.SocialInsuranceAt != "" {
		if _, ok := validator.IsValidDate(*r.SocialInsuranceAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "social_insurance_at", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.MonthlyBase.LessThan(MinimumMonthlyBase) {
		errs = append(errs, validator.ValidationError{Field: "monthly_base", Message: "monthly base must be at least 5000.00 MXN"})
	}
	if r.MonthlyBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_bonus", Message: "monthly bonus must not be negative"})
	}
	if !user.IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin, manager or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	ShortName         *string          `json:"short_name,omitempty"`
	Position          *string          `json:"position,omitempty"`
	Company           *string          `json:"company,omitempty"`
	PaymentType       *string          `json:"payment_type,omitempty"`
	HireDate          *string          `json:"hire_date,omitempty"`
	SocialInsuranceAt *string          `json:"social_insurance_at,omitempty"`
	MonthlyBase       *decimal.Decimal `json:"monthly_base,omitempty"`
	MonthlyBonus      *decimal.Decimal `json:"monthly_bonus,omitempty"`
	Active            *bool            `json:"active,omitempty"`
	Role              *string          `json:"role,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name must not be empty"})
	}
	if r.Company != nil && !company.IsValid(*r.Company) {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	if r.PaymentType != nil && !IsValidPaymentType(*r.PaymentType) {
		errs = append(errs, validator.ValidationError{Field: "payment_type", Message: "payment type must be B, S or E"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date must be YYYY-MM-DD"})
		}
	}
	if r.MonthlyBase != nil && r.MonthlyBase.LessThan(MinimumMonthlyBase) {
		errs = append(errs, validator.ValidationError{Field: "monthly_base", Message: "monthly base must be at least 5000.00 MXN"})
	}
	if r.MonthlyBonus != nil && r.MonthlyBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_bonus", Message: "monthly bonus must not be negative"})
	}
	if r.Role != nil && !user.IsValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be admin, manager or employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Company    *string
	ActiveOnly bool
	Search     *string
}

// EmployeeDetailsResponse is the full file the employee detail screen
// loads in one request. Contract and Loan are nil when none exist.
type EmployeeDetailsResponse struct {
	Employee  EmployeeResponse            `json:"employee"`
	Contract  *contract.ContractResponse  `json:"contract,omitempty"`
	Loan      *loan.LoanResponse          `json:"loan,omitempty"`
	Sanctions []sanction.SanctionResponse `json:"sanctions"`
	Incidents []incident.IncidentResponse `json:"incidents"`
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	FullName          string          `json:"full_name"`
	ShortName         string          `json:"short_name"`
	Position          string          `json:"position"`
	Company           string          `json:"company"`
	PaymentType       string          `json:"payment_type"`
	HireDate          string          `json:"hire_date"`
	SocialInsuranceAt *string         `json:"social_insurance_at,omitempty"`
	MonthlyBase       decimal.Decimal `json:"monthly_base"`
	MonthlyBonus      decimal.Decimal `json:"monthly_bonus"`
	Active            bool            `json:"active"`
	Role              string          `json:"role"`
}
