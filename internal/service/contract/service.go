package contract

import (
	"context"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
)

type contractServiceImpl struct {
	contractRepo contract.ContractRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewContractService(contractRepo contract.ContractRepository, employeeRepo employee.EmployeeRepository) contract.ContractService {
	return &contractServiceImpl{
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func (s *contractServiceImpl) CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return contract.ContractResponse{}, err
	}

	entity := contract.Contract{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
	}
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		d, _ := time.Parse("2006-01-02", *req.ExpiryDate)
		entity.ExpiryDate = &d
	}

	created, err := s.contractRepo.Create(ctx, entity)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return s.toResponse(ctx, created), nil
}

func (s *contractServiceImpl) GetContract(ctx context.Context, id string) (contract.ContractResponse, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return s.toResponse(ctx, c), nil
}

func (s *contractServiceImpl) GetEmployeeContract(ctx context.Context, employeeID string) (contract.ContractResponse, error) {
	c, err := s.contractRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return s.toResponse(ctx, c), nil
}

func (s *contractServiceImpl) ListContracts(ctx context.Context) ([]contract.ContractResponse, error) {
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, contracts), nil
}

func (s *contractServiceImpl) ListExpiring(ctx context.Context) ([]contract.ContractResponse, error) {
	contracts, err := s.contractRepo.ListExpiringWithin(ctx, contract.ExpiringWindowDays)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, contracts), nil
}

func (s *contractServiceImpl) UpdateContract(ctx context.Context, req contract.UpdateContractRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.contractRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.contractRepo.Update(ctx, req)
}

func (s *contractServiceImpl) DeleteContract(ctx context.Context, id string) error {
	return s.contractRepo.Delete(ctx, id)
}

func (s *contractServiceImpl) toResponses(ctx context.Context, contracts []contract.Contract) []contract.ContractResponse {
	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, s.toResponse(ctx, c))
	}
	return responses
}

func (s *contractServiceImpl) toResponse(ctx context.Context, c contract.Contract) contract.ContractResponse {
	status, days := contract.Classify(c.ExpiryDate, s.now())

	resp := contract.ContractResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		Type:       c.Type,
		Status:     string(status),
	}
	if c.ExpiryDate != nil {
		d := c.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &d
		resp.DaysToExpiry = &days
	}

	// Best effort; a contract row without its employee still renders.
	if emp, err := s.employeeRepo.GetByID(ctx, c.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
		resp.Company = string(emp.Company)
	}
	return resp
}
