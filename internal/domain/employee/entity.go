package employee

import (
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	FullName          string
	ShortName         string
	Position          string
	Company           company.Company
	PaymentType       PaymentType
	HireDate          time.Time
	SocialInsuranceAt *time.Time
	MonthlyBase       decimal.Decimal
	MonthlyBonus      decimal.Decimal
	Active            bool
	Role              user.Role
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PaymentType string

const (
	PaymentTypeBank      PaymentType = "B"
	PaymentTypeInsurance PaymentType = "S"
	PaymentTypeCash      PaymentType = "E"
)

func IsValidPaymentType(p string) bool {
	switch PaymentType(p) {
	case PaymentTypeBank, PaymentTypeInsurance, PaymentTypeCash:
		return true
	}
	return false
}

// MinimumMonthlyBase is the wage floor enforced at input time.
var MinimumMonthlyBase = decimal.NewFromInt(5000)
