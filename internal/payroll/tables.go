package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ContributionBracket is one slice of the progressive social-security table.
// The slice runs from the previous bracket's UpperLimit (0 for the first)
// up to UpperLimit.
type ContributionBracket struct {
	UpperLimit decimal.Decimal `json:"upper_limit" yaml:"upper_limit"`
	Rate       decimal.Decimal `json:"rate" yaml:"rate"`
}

// TaxBracket is one row of the income-tax table. A nil UpperBound is the
// catch-all +infinity bracket.
type TaxBracket struct {
	UpperBound *decimal.Decimal `json:"upper_bound" yaml:"upper_bound"`
	Rate       decimal.Decimal  `json:"rate" yaml:"rate"`
	Deduction  decimal.Decimal  `json:"deduction" yaml:"deduction"`
}

// Unbounded reports whether the bracket has no upper bound.
func (b TaxBracket) Unbounded() bool {
	return b.UpperBound == nil
}

// Contains reports whether base falls at or under the bracket's upper bound.
func (b TaxBracket) Contains(base decimal.Decimal) bool {
	return b.Unbounded() || base.LessThanOrEqual(*b.UpperBound)
}

// Tables is the full set of constants the engine runs against.
type Tables struct {
	Year                 int                   `json:"year" yaml:"year"`
	ContributionCeiling  decimal.Decimal       `json:"contribution_ceiling" yaml:"contribution_ceiling"`
	ContributionBrackets []ContributionBracket `json:"contribution_brackets" yaml:"contribution_brackets"`
	TaxBrackets          []TaxBracket          `json:"tax_brackets" yaml:"tax_brackets"`
	DependentDeduction   decimal.Decimal       `json:"dependent_deduction" yaml:"dependent_deduction"`
	SimplifiedDiscount   decimal.Decimal       `json:"simplified_discount" yaml:"simplified_discount"`
}

func bound(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// DefaultTables returns the 2025 INSS and IRRF tables.
func DefaultTables() Tables {
	return Tables{
		Year:                2025,
		ContributionCeiling: decimal.RequireFromString("951.62"),
		ContributionBrackets: []ContributionBracket{
			{UpperLimit: decimal.RequireFromString("1518.00"), Rate: decimal.RequireFromString("0.075")},
			{UpperLimit: decimal.RequireFromString("2793.88"), Rate: decimal.RequireFromString("0.09")},
			{UpperLimit: decimal.RequireFromString("4190.83"), Rate: decimal.RequireFromString("0.12")},
			{UpperLimit: decimal.RequireFromString("8157.41"), Rate: decimal.RequireFromString("0.14")},
		},
		TaxBrackets: []TaxBracket{
			{UpperBound: bound("2428.80"), Rate: decimal.Zero, Deduction: decimal.Zero},
			{UpperBound: bound("2826.65"), Rate: decimal.RequireFromString("0.075"), Deduction: decimal.RequireFromString("182.16")},
			{UpperBound: bound("3751.05"), Rate: decimal.RequireFromString("0.15"), Deduction: decimal.RequireFromString("394.16")},
			{UpperBound: bound("4664.68"), Rate: decimal.RequireFromString("0.225"), Deduction: decimal.RequireFromString("675.49")},
			{UpperBound: nil, Rate: decimal.RequireFromString("0.275"), Deduction: decimal.RequireFromString("908.73")},
		},
		DependentDeduction: decimal.RequireFromString("189.59"),
		SimplifiedDiscount: decimal.RequireFromString("607.20"),
	}
}

// Validate checks the structural invariants of both tables. Continuity of
// the tax formula across boundaries is trusted, not checked.
func (t Tables) Validate() error {
	if !t.ContributionCeiling.IsPositive() {
		return configErr("contribution ceiling must be positive, got %s", t.ContributionCeiling)
	}
	if t.DependentDeduction.IsNegative() {
		return configErr("dependent deduction must not be negative, got %s", t.DependentDeduction)
	}
	if t.SimplifiedDiscount.IsNegative() {
		return configErr("simplified discount must not be negative, got %s", t.SimplifiedDiscount)
	}

	if len(t.ContributionBrackets) == 0 {
		return configErr("contribution table is empty")
	}
	prev := ContributionBracket{UpperLimit: decimal.Zero, Rate: decimal.Zero}
	for i, b := range t.ContributionBrackets {
		if !b.UpperLimit.GreaterThan(prev.UpperLimit) {
			return configErr("contribution bracket %d: upper limit %s is not above %s", i, b.UpperLimit, prev.UpperLimit)
		}
		if b.Rate.IsNegative() || (i > 0 && !b.Rate.GreaterThan(prev.Rate)) {
			return configErr("contribution bracket %d: rate %s is not increasing", i, b.Rate)
		}
		prev = b
	}

	if len(t.TaxBrackets) == 0 {
		return configErr("tax table is empty")
	}
	last := len(t.TaxBrackets) - 1
	for i, b := range t.TaxBrackets {
		if b.Rate.IsNegative() || b.Deduction.IsNegative() {
			return configErr("tax bracket %d: negative rate or deduction", i)
		}
		if b.Unbounded() {
			if i != last {
				return configErr("tax bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if b.UpperBound.IsNegative() {
			return configErr("tax bracket %d: negative upper bound %s", i, b.UpperBound)
		}
		if i > 0 && !b.UpperBound.GreaterThan(*t.TaxBrackets[i-1].UpperBound) {
			return configErr("tax bracket %d: upper bound %s is not above the previous one", i, b.UpperBound)
		}
	}
	if !t.TaxBrackets[last].Unbounded() {
		return configErr("tax table must end with an unbounded bracket")
	}

	return nil
}

func configErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConfiguration}, args...)...)
}
