package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/attendance"
	"github.com/grupo-genisa/erp-backend-go/internal/handler/http/response"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// GetStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.attendanceService.GetStatus(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("Check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", rec)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Check-out decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Error("Check-out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", rec)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RecordFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}
	if from, ok := validator.IsValidDate(r.URL.Query().Get("from")); ok {
		filter.From = &from
	}
	if to, ok := validator.IsValidDate(r.URL.Query().Get("to")); ok {
		filter.To = &to
	}

	records, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Import implements AttendanceHandler. The CSV comes as a multipart form
// file named "file".
func (h *AttendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Attendance import parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "CSV file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.attendanceService.ImportCSV(r.Context(), file)
	if err != nil {
		slog.Error("Attendance import service error", "file", fileHeader.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance records imported successfully", result)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.DeleteRecord(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}
