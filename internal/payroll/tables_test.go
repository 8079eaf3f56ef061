package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesAreValid(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestTablesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"zero ceiling", func(tb *Tables) { tb.ContributionCeiling = decimal.Zero }},
		{"negative dependent deduction", func(tb *Tables) { tb.DependentDeduction = decimal.NewFromInt(-1) }},
		{"negative simplified discount", func(tb *Tables) { tb.SimplifiedDiscount = decimal.NewFromInt(-1) }},
		{"empty contribution table", func(tb *Tables) { tb.ContributionBrackets = nil }},
		{"unordered contribution limits", func(tb *Tables) {
			tb.ContributionBrackets[1], tb.ContributionBrackets[2] = tb.ContributionBrackets[2], tb.ContributionBrackets[1]
		}},
		{"flat contribution rate", func(tb *Tables) { tb.ContributionBrackets[1].Rate = tb.ContributionBrackets[0].Rate }},
		{"empty tax table", func(tb *Tables) { tb.TaxBrackets = nil }},
		{"missing terminal bracket", func(tb *Tables) { tb.TaxBrackets = tb.TaxBrackets[:len(tb.TaxBrackets)-1] }},
		{"unbounded bracket in the middle", func(tb *Tables) { tb.TaxBrackets[1].UpperBound = nil }},
		{"unordered tax bounds", func(tb *Tables) {
			tb.TaxBrackets[0].UpperBound, tb.TaxBrackets[1].UpperBound = tb.TaxBrackets[1].UpperBound, tb.TaxBrackets[0].UpperBound
		}},
		{"negative tax rate", func(tb *Tables) { tb.TaxBrackets[2].Rate = decimal.NewFromFloat(-0.1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := DefaultTables()
			tt.mutate(&tb)
			assert.ErrorIs(t, tb.Validate(), ErrConfiguration)
		})
	}
}

func TestFindBracketOnEmptyTable(t *testing.T) {
	_, err := findBracket(nil, decimal.Zero)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestCalculatorOwnsItsTables(t *testing.T) {
	tb := DefaultTables()
	c, err := NewCalculator(tb)
	require.NoError(t, err)

	*tb.TaxBrackets[0].UpperBound = decimal.NewFromInt(1)
	tb.ContributionBrackets[0].Rate = decimal.NewFromInt(1)

	b, err := c.FindBracket(decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.True(t, b.Rate.IsZero())
	assert.True(t, c.ComputeContribution(decimal.NewFromInt(1000)).TotalContribution.Equal(decimal.NewFromInt(75)))
}
