package payroll

import "github.com/shopspring/decimal"

// DetailInput is the raw per-employee figures a detail is built from.
type DetailInput struct {
	EmployeeID         string
	EmployeeName       string
	BaseSalary         decimal.Decimal
	Bonuses            decimal.Decimal
	ExtraPayments      decimal.Decimal
	LoanDeductions     decimal.Decimal
	SanctionDeductions decimal.Decimal
	AbsenceDeductions  decimal.Decimal
}

// BuildDetail computes the derived totals for one employee:
//
//	totalDeductions = loan + sanction + absence
//	netPay          = base + bonuses + extra - totalDeductions
func BuildDetail(in DetailInput) Detail {
	totalDeductions := in.LoanDeductions.
		Add(in.SanctionDeductions).
		Add(in.AbsenceDeductions)
	netPay := in.BaseSalary.
		Add(in.Bonuses).
		Add(in.ExtraPayments).
		Sub(totalDeductions)

	return Detail{
		EmployeeID:         in.EmployeeID,
		EmployeeName:       in.EmployeeName,
		BaseSalary:         in.BaseSalary,
		Bonuses:            in.Bonuses,
		ExtraPayments:      in.ExtraPayments,
		LoanDeductions:     in.LoanDeductions,
		SanctionDeductions: in.SanctionDeductions,
		AbsenceDeductions:  in.AbsenceDeductions,
		TotalDeductions:    totalDeductions,
		NetPay:             netPay,
	}
}

// TotalCost sums net pay across all details of a run.
func TotalCost(details []Detail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.NetPay)
	}
	return total
}

// AbsenceDeduction charges absent days at a thirtieth of the monthly base
// per day.
func AbsenceDeduction(monthlyBase decimal.Decimal, absenceDays int) decimal.Decimal {
	if absenceDays <= 0 {
		return decimal.Zero
	}
	daily := monthlyBase.Div(decimal.NewFromInt(30))
	return daily.Mul(decimal.NewFromInt(int64(absenceDays)))
}
