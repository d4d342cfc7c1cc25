package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/incident"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/sanction"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	contractSvc  contract.ContractService
	loanSvc      loan.LoanService
	sanctionSvc  sanction.SanctionService
	incidentSvc  incident.IncidentService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	contractSvc contract.ContractService,
	loanSvc loan.LoanService,
	sanctionSvc sanction.SanctionService,
	incidentSvc incident.IncidentService,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		contractSvc:  contractSvc,
		loanSvc:      loanSvc,
		sanctionSvc:  sanctionSvc,
		incidentSvc:  incidentSvc,
	}
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	entity := employee.Employee{
		FullName:     req.FullName,
		ShortName:    req.ShortName,
		Position:     req.Position,
		Company:      company.Company(req.Company),
		PaymentType:  employee.PaymentType(req.PaymentType),
		HireDate:     hireDate,
		MonthlyBase:  req.MonthlyBase,
		MonthlyBonus: req.MonthlyBonus,
		Active:       true,
		Role:         user.Role(req.Role),
	}
	if req.SocialInsuranceAt != nil && *req.SocialInsuranceAt != "" {
		d, _ := time.Parse("2006-01-02", *req.SocialInsuranceAt)
		entity.SocialInsuranceAt = &d
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}

	slog.Info("employee created", "employee_id", created.ID, "company", created.Company)
	return toEmployeeResponse(created), nil
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// GetEmployeeDetails assembles the full employee file. A missing contract
// or loan is normal and leaves the field nil.
func (s *employeeServiceImpl) GetEmployeeDetails(ctx context.Context, id string) (employee.EmployeeDetailsResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailsResponse{}, err
	}

	details := employee.EmployeeDetailsResponse{Employee: toEmployeeResponse(emp)}

	c, err := s.contractSvc.GetEmployeeContract(ctx, id)
	switch {
	case err == nil:
		details.Contract = &c
	case !errors.Is(err, contract.ErrContractNotFound):
		return employee.EmployeeDetailsResponse{}, err
	}

	l, err := s.loanSvc.GetEmployeeLoan(ctx, id)
	switch {
	case err == nil:
		details.Loan = &l
	case !errors.Is(err, loan.ErrLoanNotFound):
		return employee.EmployeeDetailsResponse{}, err
	}

	if details.Sanctions, err = s.sanctionSvc.ListEmployeeSanctions(ctx, id); err != nil {
		return employee.EmployeeDetailsResponse{}, err
	}
	if details.Incidents, err = s.incidentSvc.ListEmployeeIncidents(ctx, id); err != nil {
		return employee.EmployeeDetailsResponse{}, err
	}
	return details, nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req)
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.employeeRepo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return employee.ErrEmployeeReferenced
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// DeactivateEmployee is the path for employees with history: the record
// stays for payroll and attendance, but drops out of active listings.
func (s *employeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	active := false
	return s.employeeRepo.Update(ctx, employee.UpdateEmployeeRequest{ID: id, Active: &active})
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		FullName:     emp.FullName,
		ShortName:    emp.ShortName,
		Position:     emp.Position,
		Company:      string(emp.Company),
		PaymentType:  string(emp.PaymentType),
		HireDate:     emp.HireDate.Format("2006-01-02"),
		MonthlyBase:  emp.MonthlyBase,
		MonthlyBonus: emp.MonthlyBonus,
		Active:       emp.Active,
		Role:         string(emp.Role),
	}
	if emp.SocialInsuranceAt != nil {
		d := emp.SocialInsuranceAt.Format("2006-01-02")
		resp.SocialInsuranceAt = &d
	}
	return resp
}
