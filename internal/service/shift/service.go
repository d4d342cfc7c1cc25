package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/shift"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type shiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &shiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("extract claims: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing")
	}
	return userID, nil
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

func (s *shiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.ShiftResponse{}, err
	}
	if req.CoveredBy != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.CoveredBy); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	start, _ := validator.IsValidTimeOfDay(req.StartTime)
	end, _ := validator.IsValidTimeOfDay(req.EndTime)

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		EmployeeID: req.EmployeeID,
		CoveredBy:  req.CoveredBy,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Company:    company.Company(req.Company),
		Status:     shift.StatusPending,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return s.toResponse(ctx, created), nil
}

func (s *shiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	role, callerEmployee, err := callerFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !user.HasPermission(role, user.PermManageShifts) && sh.EmployeeID != callerEmployee {
		return shift.ShiftResponse{}, user.ErrInsufficientPermission
	}
	return s.toResponse(ctx, sh), nil
}

func (s *shiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	role, callerEmployee, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(role, user.PermManageShifts) {
		if filter.EmployeeID != "" && filter.EmployeeID != callerEmployee {
			return nil, user.ErrInsufficientPermission
		}
		filter.EmployeeID = callerEmployee
	}

	shifts, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, s.toResponse(ctx, sh))
	}
	return responses, nil
}

func (s *shiftServiceImpl) ResolveShift(ctx context.Context, req shift.ResolveShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	resolvedBy, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.shiftRepo.Resolve(ctx, req.ID, req.Status, resolvedBy)
}

func (s *shiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

func (s *shiftServiceImpl) toResponse(ctx context.Context, sh shift.Shift) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:         sh.ID,
		EmployeeID: sh.EmployeeID,
		CoveredBy:  sh.CoveredBy,
		Date:       sh.Date.Format("2006-01-02"),
		StartTime:  sh.StartTime,
		EndTime:    sh.EndTime,
		Company:    string(sh.Company),
		Status:     sh.Status,
		ResolvedBy: sh.ResolvedBy,
	}
	if sh.ResolvedAt != nil {
		t := sh.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &t
	}
	if emp, err := s.employeeRepo.GetByID(ctx, sh.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
	}
	if sh.CoveredBy != nil {
		if emp, err := s.employeeRepo.GetByID(ctx, *sh.CoveredBy); err == nil {
			resp.CoveredByName = emp.FullName
		}
	}
	return resp
}
