package master

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/master"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubPositionRepo struct {
	positions map[string]master.Position
	refs      map[string]int // employee references per position name
	nextID    int
}

func newStubPositionRepo() *stubPositionRepo {
	return &stubPositionRepo{
		positions: make(map[string]master.Position),
		refs:      make(map[string]int),
	}
}

func (r *stubPositionRepo) GetByID(_ context.Context, id string) (master.Position, error) {
	p, ok := r.positions[id]
	if !ok {
		return master.Position{}, master.ErrPositionNotFound
	}
	return p, nil
}

func (r *stubPositionRepo) List(_ context.Context) ([]master.Position, error) {
	var positions []master.Position
	for _, p := range r.positions {
		positions = append(positions, p)
	}
	return positions, nil
}

func (r *stubPositionRepo) Create(_ context.Context, p master.Position) (master.Position, error) {
	r.nextID++
	p.ID = fmt.Sprintf("pos-%d", r.nextID)
	r.positions[p.ID] = p
	return p, nil
}

func (r *stubPositionRepo) Update(_ context.Context, req master.UpdatePositionRequest) error {
	p, ok := r.positions[req.ID]
	if !ok {
		return master.ErrPositionNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.BaseSalary != nil {
		p.BaseSalary = *req.BaseSalary
	}
	r.positions[req.ID] = p
	return nil
}

func (r *stubPositionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.positions[id]; !ok {
		return master.ErrPositionNotFound
	}
	delete(r.positions, id)
	return nil
}

func (r *stubPositionRepo) CountEmployeeReferences(_ context.Context, name string) (int, error) {
	return r.refs[name], nil
}

type stubAccountRepo struct {
	accounts  map[string]master.Account
	movements []master.AccountMovement
	nextID    int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]master.Account)}
}

func (r *stubAccountRepo) GetByID(_ context.Context, id string) (master.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return master.Account{}, master.ErrAccountNotFound
	}
	return a, nil
}

func (r *stubAccountRepo) List(_ context.Context, c company.Company) ([]master.Account, error) {
	var accounts []master.Account
	for _, a := range r.accounts {
		if c == "" || a.Company == c {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (r *stubAccountRepo) Create(_ context.Context, a master.Account) (master.Account, error) {
	r.nextID++
	a.ID = fmt.Sprintf("acc-%d", r.nextID)
	r.accounts[a.ID] = a
	return a, nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return master.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) ListMovements(_ context.Context, accountID string) ([]master.AccountMovement, error) {
	var movements []master.AccountMovement
	for _, m := range r.movements {
		if m.AccountID == accountID {
			movements = append(movements, m)
		}
	}
	return movements, nil
}

func (r *stubAccountRepo) AppendMovement(_ context.Context, m master.AccountMovement, a master.Account) error {
	if _, ok := r.accounts[a.ID]; !ok {
		return master.ErrAccountNotFound
	}
	r.movements = append(r.movements, m)
	r.accounts[a.ID] = a
	return nil
}

func TestDeletePositionReferenced(t *testing.T) {
	positionRepo := newStubPositionRepo()
	svc := NewMasterService(positionRepo, newStubAccountRepo())

	created, err := svc.CreatePosition(context.Background(), master.CreatePositionRequest{
		Name:       "Cocinero",
		BaseSalary: dec("7500"),
	})
	require.NoError(t, err)
	positionRepo.refs["Cocinero"] = 2

	err = svc.DeletePosition(context.Background(), created.ID)
	assert.ErrorIs(t, err, master.ErrPositionReferenced)

	positionRepo.refs["Cocinero"] = 0
	require.NoError(t, svc.DeletePosition(context.Background(), created.ID))
}

func TestUpdatePosition(t *testing.T) {
	positionRepo := newStubPositionRepo()
	svc := NewMasterService(positionRepo, newStubAccountRepo())

	created, err := svc.CreatePosition(context.Background(), master.CreatePositionRequest{
		Name:       "Mesero",
		BaseSalary: dec("6000"),
	})
	require.NoError(t, err)

	salary := dec("6500")
	require.NoError(t, svc.UpdatePosition(context.Background(), master.UpdatePositionRequest{
		ID:         created.ID,
		BaseSalary: &salary,
	}))

	positions, err := svc.ListPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "Mesero", positions[0].Name)
	assert.True(t, positions[0].BaseSalary.Equal(dec("6500")), "got %s", positions[0].BaseSalary)

	blank := "  "
	err = svc.UpdatePosition(context.Background(), master.UpdatePositionRequest{
		ID:   created.ID,
		Name: &blank,
	})
	require.Error(t, err)

	err = svc.UpdatePosition(context.Background(), master.UpdatePositionRequest{ID: "pos-ghost"})
	assert.ErrorIs(t, err, master.ErrPositionNotFound)
}

func TestRegisterAccountMovement(t *testing.T) {
	accountRepo := newStubAccountRepo()
	svc := NewMasterService(newStubPositionRepo(), accountRepo)

	created, err := svc.CreateAccount(context.Background(), master.CreateAccountRequest{
		Name:    "Caja chica",
		Company: company.Genisa,
		Type:    master.AccountCurrent,
		Balance: dec("1000"),
	})
	require.NoError(t, err)

	updated, err := svc.RegisterAccountMovement(context.Background(), master.RegisterAccountMovementRequest{
		AccountID: created.ID,
		Date:      "2024-05-02",
		Type:      master.AccountMovementCargo,
		Amount:    dec("250"),
		Concept:   "Venta de mostrador",
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(dec("1250")), "balance after CARGO: %s", updated.Balance)

	updated, err = svc.RegisterAccountMovement(context.Background(), master.RegisterAccountMovementRequest{
		AccountID: created.ID,
		Date:      "2024-05-03",
		Type:      master.AccountMovementAbono,
		Amount:    dec("400"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(dec("850")), "balance after ABONO: %s", updated.Balance)
	assert.Len(t, updated.Movements, 2)
}

func TestRegisterAccountMovementInvalid(t *testing.T) {
	svc := NewMasterService(newStubPositionRepo(), newStubAccountRepo())

	_, err := svc.RegisterAccountMovement(context.Background(), master.RegisterAccountMovementRequest{
		AccountID: "acc-1",
		Date:      "02/05/2024",
		Type:      "TRASPASO",
		Amount:    dec("-10"),
	})
	require.Error(t, err)
}

func TestGetAccountSummary(t *testing.T) {
	accountRepo := newStubAccountRepo()
	svc := NewMasterService(newStubPositionRepo(), accountRepo)

	seed := []master.CreateAccountRequest{
		{Name: "Ventas salón", Company: company.Genisa, Type: master.AccountIncome, Balance: dec("12000")},
		{Name: "Ventas banquetes", Company: company.Genisa, Type: master.AccountIncome, Balance: dec("3000")},
		{Name: "Proveedores", Company: company.Genisa, Type: master.AccountExpense, Balance: dec("4500")},
		{Name: "Caja chica", Company: company.ColonialPachuca, Type: master.AccountCurrent, Balance: dec("800")},
	}
	for _, req := range seed {
		_, err := svc.CreateAccount(context.Background(), req)
		require.NoError(t, err)
	}

	summary, err := svc.GetAccountSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.AccountCount)
	assert.True(t, summary.TotalIncome.Equal(dec("15000")), "income: %s", summary.TotalIncome)
	assert.True(t, summary.TotalExpense.Equal(dec("4500")), "expense: %s", summary.TotalExpense)
	assert.True(t, summary.TotalCurrent.Equal(dec("800")), "current: %s", summary.TotalCurrent)

	summary, err = svc.GetAccountSummary(context.Background(), company.ColonialPachuca)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AccountCount)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalCurrent.Equal(dec("800")))
}
