package http

import (
	"net/http"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/report"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GetSummary implements ReportHandler.
func (h *ReportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
