package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

// ImportRow is one parsed line of an attendance CSV, before employee ids
// have been checked against the database.
type ImportRow struct {
	Line       int
	EmployeeID string
	Date       time.Time
	CheckIn    string
	CheckOut   string
}

// ImportError points at the offending CSV line. Line numbers count from
// the top of the file, header included.
type ImportError struct {
	Line    int
	Message string
}

func (e ImportError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ImportErrors is every problem found in a rejected file.
type ImportErrors []ImportError

func (e ImportErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var importHeader = []string{"employeeId", "date", "checkIn", "checkOut"}

// ParseImport reads an attendance CSV and returns its rows, or every
// error found. A file with any bad line yields no rows at all; partial
// imports would leave attendance half-loaded.
func ParseImport(r io.Reader) ([]ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ImportErrors{{Line: 1, Message: "file is empty"}}
	}
	if err != nil {
		return nil, ImportErrors{{Line: 1, Message: "cannot read header"}}
	}
	if !headerMatches(header) {
		return nil, ImportErrors{{Line: 1, Message: "header must be employeeId,date,checkIn,checkOut"}}
	}

	var (
		rows       []ImportRow
		importErrs ImportErrors
		line       = 1
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			importErrs = append(importErrs, ImportError{Line: line, Message: "malformed CSV line"})
			continue
		}
		row, rowErr := parseRow(line, record)
		if rowErr != nil {
			importErrs = append(importErrs, *rowErr)
			continue
		}
		rows = append(rows, row)
	}

	if len(importErrs) > 0 {
		return nil, importErrs
	}
	if len(rows) == 0 {
		return nil, ImportErrors{{Line: 1, Message: "file has no data rows"}}
	}
	return rows, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(importHeader) {
		return false
	}
	for i, want := range importHeader {
		if strings.TrimSpace(header[i]) != want {
			return false
		}
	}
	return true
}

func parseRow(line int, record []string) (ImportRow, *ImportError) {
	if len(record) != 4 {
		return ImportRow{}, &ImportError{Line: line, Message: "expected 4 fields"}
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
		if record[i] == "" {
			return ImportRow{}, &ImportError{Line: line, Message: "all 4 fields are required"}
		}
	}

	date, ok := validator.IsValidDate(record[1])
	if !ok {
		return ImportRow{}, &ImportError{Line: line, Message: "date must be YYYY-MM-DD"}
	}
	checkIn, ok := validator.IsValidTimeOfDay(record[2])
	if !ok {
		return ImportRow{}, &ImportError{Line: line, Message: "checkIn must be HH:MM or HH:MM:SS"}
	}
	checkOut, ok := validator.IsValidTimeOfDay(record[3])
	if !ok {
		return ImportRow{}, &ImportError{Line: line, Message: "checkOut must be HH:MM or HH:MM:SS"}
	}
	if checkIn >= checkOut {
		return ImportRow{}, &ImportError{Line: line, Message: "checkIn must be earlier than checkOut"}
	}

	return ImportRow{
		Line:       line,
		EmployeeID: record[0],
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}
