package report

import "context"

type ReportService interface {
	GetSummary(ctx context.Context) (Summary, error)
}
