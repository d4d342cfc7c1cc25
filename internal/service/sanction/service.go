package sanction

import (
	"context"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/sanction"
)

type sanctionServiceImpl struct {
	sanctionRepo sanction.SanctionRepository
	employeeRepo employee.EmployeeRepository
}

func NewSanctionService(sanctionRepo sanction.SanctionRepository, employeeRepo employee.EmployeeRepository) sanction.SanctionService {
	return &sanctionServiceImpl{
		sanctionRepo: sanctionRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *sanctionServiceImpl) CreateSanction(ctx context.Context, req sanction.CreateSanctionRequest) (sanction.SanctionResponse, error) {
	if err := req.Validate(); err != nil {
		return sanction.SanctionResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return sanction.SanctionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.sanctionRepo.Create(ctx, sanction.Sanction{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Reason:     req.Reason,
		Amount:     req.Amount,
	})
	if err != nil {
		return sanction.SanctionResponse{}, err
	}
	return s.toResponse(ctx, created), nil
}

func (s *sanctionServiceImpl) GetSanction(ctx context.Context, id string) (sanction.SanctionResponse, error) {
	sn, err := s.sanctionRepo.GetByID(ctx, id)
	if err != nil {
		return sanction.SanctionResponse{}, err
	}
	return s.toResponse(ctx, sn), nil
}

func (s *sanctionServiceImpl) ListSanctions(ctx context.Context) ([]sanction.SanctionResponse, error) {
	sanctions, err := s.sanctionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, sanctions), nil
}

func (s *sanctionServiceImpl) ListEmployeeSanctions(ctx context.Context, employeeID string) ([]sanction.SanctionResponse, error) {
	sanctions, err := s.sanctionRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, sanctions), nil
}

func (s *sanctionServiceImpl) UpdateSanction(ctx context.Context, req sanction.UpdateSanctionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.sanctionRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.sanctionRepo.Update(ctx, req)
}

func (s *sanctionServiceImpl) DeleteSanction(ctx context.Context, id string) error {
	return s.sanctionRepo.Delete(ctx, id)
}

func (s *sanctionServiceImpl) toResponses(ctx context.Context, sanctions []sanction.Sanction) []sanction.SanctionResponse {
	responses := make([]sanction.SanctionResponse, 0, len(sanctions))
	for _, sn := range sanctions {
		responses = append(responses, s.toResponse(ctx, sn))
	}
	return responses
}

func (s *sanctionServiceImpl) toResponse(ctx context.Context, sn sanction.Sanction) sanction.SanctionResponse {
	resp := sanction.SanctionResponse{
		ID:         sn.ID,
		EmployeeID: sn.EmployeeID,
		Number:     sn.Number,
		Date:       sn.Date.Format("2006-01-02"),
		Reason:     sn.Reason,
		Amount:     sn.Amount,
	}
	if emp, err := s.employeeRepo.GetByID(ctx, sn.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
	}
	return resp
}
