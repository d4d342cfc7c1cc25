package attendance

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/attendance"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
)

type stubRecordRepo struct {
	records []attendance.Record
	nextID  int
}

func (r *stubRecordRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *stubRecordRepo) GetLatestByEmployee(_ context.Context, employeeID string) (attendance.Record, error) {
	var latest *attendance.Record
	for i := range r.records {
		rec := &r.records[i]
		if rec.EmployeeID != employeeID {
			continue
		}
		if latest == nil || rec.Date.After(latest.Date) ||
			(rec.Date.Equal(latest.Date) && rec.CheckIn > latest.CheckIn) {
			latest = rec
		}
	}
	if latest == nil {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return *latest, nil
}

func (r *stubRecordRepo) List(_ context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *stubRecordRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.nextID++
	rec.ID = fmt.Sprintf("rec-%d", r.nextID)
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *stubRecordRepo) CloseRecord(_ context.Context, id, checkOut string) error {
	for i := range r.records {
		if r.records[i].ID == id && r.records[i].CheckOut == nil {
			r.records[i].CheckOut = &checkOut
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (r *stubRecordRepo) CreateBatch(_ context.Context, records []attendance.Record) error {
	for _, rec := range records {
		r.nextID++
		rec.ID = fmt.Sprintf("rec-%d", r.nextID)
		r.records = append(r.records, rec)
	}
	return nil
}

func (r *stubRecordRepo) Delete(_ context.Context, id string) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

type stubEmployeeRepo struct {
	known map[string]bool
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if !r.known[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FullName: "Luis Vega", Company: company.CafeteriaUPT}, nil
}

func (r *stubEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) GetActiveByCompany(_ context.Context, _ company.Company) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *stubEmployeeRepo) CountReferences(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func clockContext(t *testing.T, role user.Role, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "usr-1",
		"role":        string(role),
		"employee_id": employeeID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *stubRecordRepo) *attendanceServiceImpl {
	return &attendanceServiceImpl{
		attendanceRepo: repo,
		employeeRepo:   &stubEmployeeRepo{known: map[string]bool{"emp-1": true, "emp-2": true}},
		now: func() time.Time {
			return time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
		},
	}
}

func TestCheckInThenOut(t *testing.T) {
	repo := &stubRecordRepo{}
	svc := newTestService(repo)
	ctx := clockContext(t, user.RoleEmployee, "emp-1")

	status, err := svc.GetStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckIn, status.NextAction)

	rec, err := svc.CheckIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", rec.CheckIn)
	assert.Nil(t, rec.CheckOut)

	status, err = svc.GetStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckOut, status.NextAction)
	require.NotNil(t, status.OpenRecord)

	closed, err := svc.CheckOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, closed.CheckOut)
	assert.Equal(t, "09:30:00", *closed.CheckOut)

	status, err = svc.GetStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckIn, status.NextAction)
}

func TestDoubleCheckInRejected(t *testing.T) {
	svc := newTestService(&stubRecordRepo{})
	ctx := clockContext(t, user.RoleEmployee, "emp-1")

	_, err := svc.CheckIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc := newTestService(&stubRecordRepo{})

	ctx := clockContext(t, user.RoleEmployee, "emp-1")
	_, err := svc.CheckOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestGateIsPerEmployee(t *testing.T) {
	svc := newTestService(&stubRecordRepo{})
	ctx := clockContext(t, user.RoleManager, "")

	_, err := svc.CheckIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// emp-2 is unaffected by emp-1's open record.
	_, err = svc.CheckIn(ctx, attendance.ClockRequest{EmployeeID: "emp-2"})
	require.NoError(t, err)
}

func TestClockScopedToOwnEmployee(t *testing.T) {
	svc := newTestService(&stubRecordRepo{})

	// emp-1's token cannot act on emp-2's clock.
	ctx := clockContext(t, user.RoleEmployee, "emp-1")
	_, err := svc.CheckIn(ctx, attendance.ClockRequest{EmployeeID: "emp-2"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermission)

	_, err = svc.CheckOut(ctx, attendance.ClockRequest{EmployeeID: "emp-2"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermission)

	_, err = svc.GetStatus(ctx, "emp-2")
	assert.ErrorIs(t, err, user.ErrInsufficientPermission)

	// A manager can clock anyone.
	mgr := clockContext(t, user.RoleManager, "")
	_, err = svc.CheckIn(mgr, attendance.ClockRequest{EmployeeID: "emp-2"})
	require.NoError(t, err)
}

func TestImportCSV(t *testing.T) {
	repo := &stubRecordRepo{}
	svc := newTestService(repo)

	csv := "employeeId,date,checkIn,checkOut\n" +
		"emp-1,2024-03-01,08:00,16:00\n" +
		"emp-2,2024-03-01,09:00,17:30\n"

	resp, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Len(t, repo.records, 2)
	assert.Equal(t, attendance.SourceImport, repo.records[0].Source)
}

func TestImportCSVUnknownEmployeeImportsNothing(t *testing.T) {
	repo := &stubRecordRepo{}
	svc := newTestService(repo)

	csv := "employeeId,date,checkIn,checkOut\n" +
		"emp-1,2024-03-01,08:00,16:00\n" +
		"emp-ghost,2024-03-01,09:00,17:00\n"

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))

	var errs attendance.ImportErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, 3, errs[0].Line)
	assert.Empty(t, repo.records)
}
