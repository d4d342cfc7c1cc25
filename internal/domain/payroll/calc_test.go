package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildDetail(t *testing.T) {
	d := BuildDetail(DetailInput{
		EmployeeID:         "emp-1",
		BaseSalary:         dec("8000"),
		Bonuses:            dec("500"),
		ExtraPayments:      dec("250"),
		LoanDeductions:     dec("1000"),
		SanctionDeductions: dec("300"),
		AbsenceDeductions:  dec("266.67"),
	})

	assert.True(t, dec("1566.67").Equal(d.TotalDeductions), "got %s", d.TotalDeductions)
	assert.True(t, dec("7183.33").Equal(d.NetPay), "got %s", d.NetPay)
}

func TestBuildDetailNoDeductions(t *testing.T) {
	d := BuildDetail(DetailInput{BaseSalary: dec("5000")})

	assert.True(t, d.TotalDeductions.IsZero())
	assert.True(t, dec("5000").Equal(d.NetPay))
}

func TestBuildDetailCanGoNegative(t *testing.T) {
	// Deductions larger than earnings are carried, not clamped.
	d := BuildDetail(DetailInput{
		BaseSalary:     dec("5000"),
		LoanDeductions: dec("6000"),
	})

	assert.True(t, dec("-1000").Equal(d.NetPay))
}

func TestTotalCost(t *testing.T) {
	details := []Detail{
		BuildDetail(DetailInput{BaseSalary: dec("5000")}),
		BuildDetail(DetailInput{BaseSalary: dec("8000"), SanctionDeductions: dec("500")}),
	}

	assert.True(t, dec("12500").Equal(TotalCost(details)))
	assert.True(t, TotalCost(nil).IsZero())
}

func TestAbsenceDeduction(t *testing.T) {
	// 9000/30 = 300 per day
	assert.True(t, dec("900").Equal(AbsenceDeduction(dec("9000"), 3)))
	assert.True(t, AbsenceDeduction(dec("9000"), 0).IsZero())
	assert.True(t, AbsenceDeduction(dec("9000"), -2).IsZero())
}
