package cron

import (
	"context"
	"log/slog"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
)

// ContractExpiryJob logs every contract already expired or inside the
// expiring window, so renewals show up in the daily log review even when
// nobody opens the dashboard.
func ContractExpiryJob(contractRepo contract.ContractRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		expiring, err := contractRepo.ListExpiringWithin(ctx, contract.ExpiringWindowDays)
		if err != nil {
			return err
		}

		for _, c := range expiring {
			slog.Warn("Contract needs renewal",
				"contract_id", c.ID,
				"employee_id", c.EmployeeID,
				"expiry_date", c.ExpiryDate.Format("2006-01-02"),
			)
		}
		if len(expiring) > 0 {
			slog.Info("Contract expiry scan finished", "flagged", len(expiring))
		}
		return nil
	}
}
