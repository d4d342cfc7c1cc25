package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/attendance"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.RecordRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.RecordRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// authorizeTarget rejects callers acting on someone else's clock unless
// their role carries the attendance management permission. The employee
// role can only target the employee_id baked into its own token.
func (s *attendanceServiceImpl) authorizeTarget(ctx context.Context, employeeID string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("extract claims: %w", err)
	}
	role, _ := claims["role"].(string)
	if user.HasPermission(user.Role(role), user.PermManageAttendance) {
		return nil
	}
	callerEmployee, _ := claims["employee_id"].(string)
	if callerEmployee != "" && callerEmployee == employeeID {
		return nil
	}
	return user.ErrInsufficientPermission
}

func (s *attendanceServiceImpl) GetStatus(ctx context.Context, employeeID string) (attendance.StatusResponse, error) {
	if err := s.authorizeTarget(ctx, employeeID); err != nil {
		return attendance.StatusResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.StatusResponse{}, err
	}

	latest, err := s.latestRecord(ctx, employeeID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	resp := attendance.StatusResponse{
		EmployeeID: employeeID,
		NextAction: attendance.Gate(latest),
	}
	if latest != nil && latest.Open() {
		r := s.toResponse(ctx, *latest)
		resp.OpenRecord = &r
	}
	return resp, nil
}

// CheckIn opens a record for today. The gate is enforced here, not in the
// client: an open record anywhere in the history blocks a second check-in.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := s.authorizeTarget(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	latest, err := s.latestRecord(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if attendance.Gate(latest) != attendance.ActionCheckIn {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	now := s.now()
	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CheckIn:    now.Format("15:04:05"),
		Source:     attendance.SourceClock,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("employee checked in", "employee_id", req.EmployeeID)
	return s.toResponse(ctx, created), nil
}

func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := s.authorizeTarget(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	latest, err := s.latestRecord(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if attendance.Gate(latest) != attendance.ActionCheckOut {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}

	checkOut := s.now().Format("15:04:05")
	if err := s.attendanceRepo.CloseRecord(ctx, latest.ID, checkOut); err != nil {
		return attendance.RecordResponse{}, err
	}

	closed, err := s.attendanceRepo.GetByID(ctx, latest.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	slog.Info("employee checked out", "employee_id", req.EmployeeID)
	return s.toResponse(ctx, closed), nil
}

func (s *attendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toResponse(ctx, rec))
	}
	return responses, nil
}

// ImportCSV parses the whole file first and verifies every employee id,
// then inserts all rows in one transaction. Any failure imports nothing.
func (s *attendanceServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (attendance.ImportResponse, error) {
	rows, err := attendance.ParseImport(r)
	if err != nil {
		return attendance.ImportResponse{}, err
	}

	var importErrs attendance.ImportErrors
	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		if _, err := s.employeeRepo.GetByID(ctx, row.EmployeeID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				importErrs = append(importErrs, attendance.ImportError{
					Line:    row.Line,
					Message: "unknown employee id " + row.EmployeeID,
				})
				continue
			}
			return attendance.ImportResponse{}, err
		}
		checkOut := row.CheckOut
		records = append(records, attendance.Record{
			EmployeeID: row.EmployeeID,
			Date:       row.Date,
			CheckIn:    row.CheckIn,
			CheckOut:   &checkOut,
			Source:     attendance.SourceImport,
		})
	}
	if len(importErrs) > 0 {
		return attendance.ImportResponse{}, importErrs
	}

	if err := s.attendanceRepo.CreateBatch(ctx, records); err != nil {
		return attendance.ImportResponse{}, err
	}

	slog.Info("attendance import completed", "records", len(records))
	return attendance.ImportResponse{Imported: len(records)}, nil
}

func (s *attendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *attendanceServiceImpl) latestRecord(ctx context.Context, employeeID string) (*attendance.Record, error) {
	latest, err := s.attendanceRepo.GetLatestByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &latest, nil
}

func (s *attendanceServiceImpl) toResponse(ctx context.Context, rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		CheckIn:    rec.CheckIn,
		CheckOut:   rec.CheckOut,
		Source:     rec.Source,
	}
	if emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
	}
	return resp
}
