package report

import (
	"github.com/shopspring/decimal"
)

// CompanySummary is one company's slice of the dashboard.
type CompanySummary struct {
	Company         string          `json:"company"`
	ActiveEmployees int             `json:"active_employees"`
	MonthlyBaseCost decimal.Decimal `json:"monthly_base_cost"`
	LowStockItems   int             `json:"low_stock_items"`
	MarginAlerts    int             `json:"margin_alerts"`
}

// Summary is the aggregate view the admin dashboard loads on entry.
type Summary struct {
	Companies         []CompanySummary `json:"companies"`
	TotalEmployees    int              `json:"total_employees"`
	ExpiringContracts int              `json:"expiring_contracts"`
	ExpiredContracts  int              `json:"expired_contracts"`
	PendingShifts     int              `json:"pending_shifts"`
	OutstandingLoans  decimal.Decimal  `json:"outstanding_loans"`
}
