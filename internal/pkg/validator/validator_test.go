package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana@genisa.mx",
		"first.last+tag@sub.example.com",
	}
	invalid := []string{
		"",
		"no-at-sign",
		"missing@tld",
		"@example.com",
	}

	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-04-30")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	for _, s := range []string{"", "30-04-2024", "2024-13-01", "2024-04-31", "2024-04-30T00:00:00Z"} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"08:00", "08:00:00", true},
		{"08:00:30", "08:00:30", true},
		{"23:59", "23:59:00", true},
		{"00:00", "00:00:00", true},
		{"24:00", "", false},
		{"8:00", "", false},
		{"08:60", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := IsValidTimeOfDay(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDecimalChecks(t *testing.T) {
	assert.True(t, IsNonNegative(decimal.Zero))
	assert.True(t, IsNonNegative(decimal.NewFromInt(5)))
	assert.False(t, IsNonNegative(decimal.NewFromInt(-1)))

	assert.False(t, IsPositive(decimal.Zero))
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.NewFromInt(-1)))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "company", Message: "unknown company"},
	}

	assert.Equal(t, "name: name is required; company: unknown company", errs.Error())
	assert.Equal(t, map[string]string{
		"name":    "name is required",
		"company": "unknown company",
	}, errs.ToMap())
}
