package attendance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImport(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		csv := "employeeId,date,checkIn,checkOut\n" +
			"emp-1,2024-03-04,08:00,16:30\n" +
			"emp-2,2024-03-04,09:15:30,17:00:00\n"

		rows, err := ParseImport(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "emp-1", rows[0].EmployeeID)
		assert.Equal(t, "08:00:00", rows[0].CheckIn)
		assert.Equal(t, "16:30:00", rows[0].CheckOut)
		assert.Equal(t, 2, rows[0].Line)
		assert.Equal(t, "09:15:30", rows[1].CheckIn)
	})

	t.Run("wrong header rejects the file", func(t *testing.T) {
		csv := "id,day,in,out\nemp-1,2024-03-04,08:00,16:00\n"

		_, err := ParseImport(strings.NewReader(csv))
		var errs ImportErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, 1, errs[0].Line)
	})

	t.Run("one bad line rejects every row", func(t *testing.T) {
		csv := "employeeId,date,checkIn,checkOut\n" +
			"emp-1,2024-03-04,08:00,16:00\n" +
			"emp-2,04/03/2024,08:00,16:00\n" +
			"emp-3,2024-03-04,08:00,16:00\n"

		rows, err := ParseImport(strings.NewReader(csv))
		assert.Nil(t, rows)

		var errs ImportErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, 3, errs[0].Line)
		assert.Contains(t, errs[0].Message, "YYYY-MM-DD")
	})

	t.Run("collects every bad line", func(t *testing.T) {
		csv := "employeeId,date,checkIn,checkOut\n" +
			"emp-1,2024-03-04,,16:00\n" +
			"emp-2,2024-03-04,16:00,08:00\n" +
			"emp-3,2024-03-04,25:00,26:00\n"

		_, err := ParseImport(strings.NewReader(csv))
		var errs ImportErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 3)
		assert.Equal(t, 2, errs[0].Line)
		assert.Equal(t, 3, errs[1].Line)
		assert.Equal(t, 4, errs[2].Line)
	})

	t.Run("check-in must precede check-out", func(t *testing.T) {
		csv := "employeeId,date,checkIn,checkOut\n" +
			"emp-1,2024-03-04,16:00,16:00\n"

		_, err := ParseImport(strings.NewReader(csv))
		var errs ImportErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs[0].Message, "earlier")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ParseImport(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := ParseImport(strings.NewReader("employeeId,date,checkIn,checkOut\n"))
		var errs ImportErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs[0].Message, "no data rows")
	})
}

func TestGate(t *testing.T) {
	out := "17:00:00"

	assert.Equal(t, ActionCheckIn, Gate(nil))
	assert.Equal(t, ActionCheckOut, Gate(&Record{CheckIn: "08:00:00"}))
	assert.Equal(t, ActionCheckIn, Gate(&Record{CheckIn: "08:00:00", CheckOut: &out}))
}
