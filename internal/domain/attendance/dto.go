package attendance

import (
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{
			{Field: "employee_id", Message: "employee id is required"},
		}
	}
	return nil
}

type RecordFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out,omitempty"`
	Source       Source  `json:"source"`
}

type StatusResponse struct {
	EmployeeID string          `json:"employee_id"`
	NextAction NextAction      `json:"next_action"`
	OpenRecord *RecordResponse `json:"open_record,omitempty"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
