package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/shift"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
)

type stubShiftRepo struct {
	shifts map[string]shift.Shift
	nextID int
}

func newStubShiftRepo() *stubShiftRepo {
	return &stubShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (r *stubShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	sh, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (r *stubShiftRepo) List(_ context.Context, filter shift.ShiftFilter) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, sh := range r.shifts {
		if filter.EmployeeID != "" && sh.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Company != "" && sh.Company != filter.Company {
			continue
		}
		if filter.Status != "" && sh.Status != filter.Status {
			continue
		}
		out = append(out, sh)
	}
	return out, nil
}

func (r *stubShiftRepo) Create(_ context.Context, sh shift.Shift) (shift.Shift, error) {
	r.nextID++
	sh.ID = fmt.Sprintf("shift-%d", r.nextID)
	sh.CreatedAt = time.Now()
	r.shifts[sh.ID] = sh
	return sh, nil
}

func (r *stubShiftRepo) Resolve(_ context.Context, id string, status shift.Status, resolvedBy string) error {
	sh, ok := r.shifts[id]
	if !ok {
		return shift.ErrShiftNotFound
	}
	if sh.Status != shift.StatusPending {
		return shift.ErrAlreadyResolved
	}
	now := time.Now()
	sh.Status = status
	sh.ResolvedBy = &resolvedBy
	sh.ResolvedAt = &now
	r.shifts[id] = sh
	return nil
}

func (r *stubShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(r.shifts, id)
	return nil
}

type stubEmployeeRepo struct {
	staff map[string]employee.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{staff: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Ana Cruz", Company: company.Genisa, Active: true},
		"emp-2": {ID: "emp-2", FullName: "Beto Lara", Company: company.Genisa, Active: true},
	}}
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.staff[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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

func claimsContext(t *testing.T, role user.Role, employeeID string) context.Context {
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

func strPtr(s string) *string { return &s }

func TestCreateShiftCarriesSchedule(t *testing.T) {
	svc := NewShiftService(newStubShiftRepo(), newStubEmployeeRepo())
	ctx := claimsContext(t, user.RoleManager, "")

	created, err := svc.CreateShift(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		CoveredBy:  strPtr("emp-2"),
		Date:       "2024-05-10",
		StartTime:  "08:00",
		EndTime:    "16:30",
		Company:    string(company.Genisa),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-10", created.Date)
	assert.Equal(t, "08:00:00", created.StartTime)
	assert.Equal(t, "16:30:00", created.EndTime)
	assert.Equal(t, string(company.Genisa), created.Company)
	assert.Equal(t, shift.StatusPending, created.Status)
	require.NotNil(t, created.CoveredBy)
	assert.Equal(t, "emp-2", *created.CoveredBy)
	assert.Equal(t, "Ana Cruz", created.EmployeeName)
	assert.Equal(t, "Beto Lara", created.CoveredByName)
}

func TestCreateShiftUnknownCover(t *testing.T) {
	svc := NewShiftService(newStubShiftRepo(), newStubEmployeeRepo())
	ctx := claimsContext(t, user.RoleManager, "")

	_, err := svc.CreateShift(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		CoveredBy:  strPtr("emp-ghost"),
		Date:       "2024-05-10",
		StartTime:  "08:00",
		EndTime:    "16:00",
		Company:    string(company.Genisa),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateShiftInvalid(t *testing.T) {
	svc := NewShiftService(newStubShiftRepo(), newStubEmployeeRepo())
	ctx := claimsContext(t, user.RoleManager, "")

	_, err := svc.CreateShift(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Date:       "10/05/2024",
		StartTime:  "8am",
		EndTime:    "25:00",
		Company:    "OTRA",
	})
	require.Error(t, err)
}

func TestResolveShiftOnlyOnce(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewShiftService(repo, newStubEmployeeRepo())
	ctx := claimsContext(t, user.RoleManager, "")

	created, err := svc.CreateShift(ctx, shift.CreateShiftRequest{
		EmployeeID: "emp-1",
		Date:       "2024-05-10",
		StartTime:  "08:00",
		EndTime:    "16:00",
		Company:    string(company.Genisa),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResolveShift(ctx, shift.ResolveShiftRequest{
		ID:     created.ID,
		Status: shift.StatusApproved,
	}))

	got, err := svc.GetShift(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusApproved, got.Status)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, "usr-1", *got.ResolvedBy)

	err = svc.ResolveShift(ctx, shift.ResolveShiftRequest{
		ID:     created.ID,
		Status: shift.StatusRejected,
	})
	assert.ErrorIs(t, err, shift.ErrAlreadyResolved)

	err = svc.ResolveShift(ctx, shift.ResolveShiftRequest{
		ID:     created.ID,
		Status: "CANCELADO",
	})
	require.Error(t, err)
}

func TestShiftsScopedToOwnEmployee(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewShiftService(repo, newStubEmployeeRepo())
	manager := claimsContext(t, user.RoleManager, "")

	for _, empID := range []string{"emp-1", "emp-2"} {
		_, err := svc.CreateShift(manager, shift.CreateShiftRequest{
			EmployeeID: empID,
			Date:       "2024-05-10",
			StartTime:  "08:00",
			EndTime:    "16:00",
			Company:    string(company.Genisa),
		})
		require.NoError(t, err)
	}

	// An employee token only ever sees its own shifts.
	own := claimsContext(t, user.RoleEmployee, "emp-1")
	shifts, err := svc.ListShifts(own, shift.ShiftFilter{})
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "emp-1", shifts[0].EmployeeID)

	_, err = svc.ListShifts(own, shift.ShiftFilter{EmployeeID: "emp-2"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermission)

	_, err = svc.GetShift(own, "shift-2")
	assert.ErrorIs(t, err, user.ErrInsufficientPermission)

	// Managers see everyone.
	shifts, err = svc.ListShifts(manager, shift.ShiftFilter{})
	require.NoError(t, err)
	assert.Len(t, shifts, 2)
}
