package brl

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll-engine/internal/payroll"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3000", "3000"},
		{"3000.50", "3000.50"},
		{"3.000,50", "3000.50"},
		{"3.000", "3000"},
		{"1.234.567,89", "1234567.89"},
		{"1.234.567", "1234567"},
		{"R$ 1.518,00", "1518"},
		{"189,59", "189.59"},
		{" 607.2 ", "607.2"},
		{"-10,5", "-10.5"},
		{"3,000.00", "3000"},
		{"1,234.56", "1234.56"},
		{"1,234,567.89", "1234567.89"},
		{"1,234", "1234"},
		{"1,234,567", "1234567"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "%s: want %s, got %s", tt.in, tt.want, got)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "R$", "abc", "NaN", "Inf", "1,2,3", "--5", "1.234,5.6"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, payroll.ErrInvalidInput, in)
	}
}

func TestMoney(t *testing.T) {
	tests := map[string]string{
		"0":           "R$ 0,00",
		"75":          "R$ 75,00",
		"253.41":      "R$ 253,41",
		"2746.59":     "R$ 2.746,59",
		"23.83425":    "R$ 23,83",
		"1234567.891": "R$ 1.234.567,89",
		"-12.5":       "-R$ 12,50",
	}
	for in, want := range tests {
		assert.Equal(t, want, Money(decimal.RequireFromString(in)), in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "7,5%", Percent(decimal.RequireFromString("0.075")))
	assert.Equal(t, "27,5%", Percent(decimal.RequireFromString("0.275")))
	assert.Equal(t, "0%", Percent(decimal.Zero))
	assert.Equal(t, "14%", Percent(decimal.RequireFromString("0.14")))
}
