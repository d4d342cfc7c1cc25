package incident

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/incident"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
)

type incidentServiceImpl struct {
	incidentRepo incident.IncidentRepository
	employeeRepo employee.EmployeeRepository
}

func NewIncidentService(incidentRepo incident.IncidentRepository, employeeRepo employee.EmployeeRepository) incident.IncidentService {
	return &incidentServiceImpl{
		incidentRepo: incidentRepo,
		employeeRepo: employeeRepo,
	}
}

func callerFromContext(ctx context.Context) (user.Role, string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("extract claims: %w", err)
	}
	role, _ := claims["role"].(string)
	employeeID, _ := claims["employee_id"].(string)
	return user.Role(role), employeeID, nil
}

func (s *incidentServiceImpl) CreateIncident(ctx context.Context, req incident.CreateIncidentRequest) (incident.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return incident.IncidentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return incident.IncidentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.incidentRepo.Create(ctx, incident.Incident{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Description: req.Description,
		Observation: req.Observation,
	})
	if err != nil {
		return incident.IncidentResponse{}, err
	}
	return s.toResponse(ctx, created), nil
}

func (s *incidentServiceImpl) GetIncident(ctx context.Context, id string) (incident.IncidentResponse, error) {
	inc, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return incident.IncidentResponse{}, err
	}

	role, callerEmployee, err := callerFromContext(ctx)
	if err != nil {
		return incident.IncidentResponse{}, err
	}
	if !user.HasPermission(role, user.PermManageIncidents) && inc.EmployeeID != callerEmployee {
		return incident.IncidentResponse{}, user.ErrInsufficientPermission
	}
	return s.toResponse(ctx, inc), nil
}

func (s *incidentServiceImpl) ListIncidents(ctx context.Context) ([]incident.IncidentResponse, error) {
	role, callerEmployee, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermManageIncidents) {
		return s.listByEmployee(ctx, callerEmployee)
	}

	incidents, err := s.incidentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, incidents), nil
}

func (s *incidentServiceImpl) ListEmployeeIncidents(ctx context.Context, employeeID string) ([]incident.IncidentResponse, error) {
	role, callerEmployee, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermManageIncidents) && employeeID != callerEmployee {
		return nil, user.ErrInsufficientPermission
	}
	return s.listByEmployee(ctx, employeeID)
}

func (s *incidentServiceImpl) listByEmployee(ctx context.Context, employeeID string) ([]incident.IncidentResponse, error) {
	incidents, err := s.incidentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, incidents), nil
}

func (s *incidentServiceImpl) UpdateIncident(ctx context.Context, req incident.UpdateIncidentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.incidentRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.incidentRepo.Update(ctx, req)
}

func (s *incidentServiceImpl) DeleteIncident(ctx context.Context, id string) error {
	return s.incidentRepo.Delete(ctx, id)
}

func (s *incidentServiceImpl) toResponses(ctx context.Context, incidents []incident.Incident) []incident.IncidentResponse {
	responses := make([]incident.IncidentResponse, 0, len(incidents))
	for _, inc := range incidents {
		responses = append(responses, s.toResponse(ctx, inc))
	}
	return responses
}

func (s *incidentServiceImpl) toResponse(ctx context.Context, inc incident.Incident) incident.IncidentResponse {
	resp := incident.IncidentResponse{
		ID:          inc.ID,
		EmployeeID:  inc.EmployeeID,
		Date:        inc.Date.Format("2006-01-02"),
		Description: inc.Description,
		Observation: inc.Observation,
	}
	if emp, err := s.employeeRepo.GetByID(ctx, inc.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
	}
	return resp
}
