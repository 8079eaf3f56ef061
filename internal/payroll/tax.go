package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxResult is the IRRF computed by one method.
type TaxResult struct {
	TaxableBase decimal.Decimal `json:"taxable_base"`
	Rate        decimal.Decimal `json:"rate"`
	Deduction   decimal.Decimal `json:"deduction"`
	TaxDue      decimal.Decimal `json:"tax_due"`
}

// FindBracket returns the first bracket whose upper bound is at or above
// base. Bounds are inclusive.
func (c *Calculator) FindBracket(base decimal.Decimal) (TaxBracket, error) {
	return findBracket(c.tables.TaxBrackets, base)
}

func findBracket(brackets []TaxBracket, base decimal.Decimal) (TaxBracket, error) {
	if len(brackets) == 0 {
		return TaxBracket{}, fmt.Errorf("%w: tax table is empty", ErrConfiguration)
	}
	for _, b := range brackets {
		if b.Contains(base) {
			return b, nil
		}
	}
	// Only reachable with a table that skipped Validate.
	return brackets[len(brackets)-1], nil
}

// ComputeLegal applies the itemized method: contribution, dependents and
// alimony are subtracted from the gross before the bracket lookup.
func (c *Calculator) ComputeLegal(gross, contribution decimal.Decimal, dependents int, pension decimal.Decimal) TaxResult {
	base := gross.
		Sub(contribution).
		Sub(c.tables.DependentDeduction.Mul(decimal.NewFromInt(int64(dependents)))).
		Sub(pension)
	return c.taxOn(base)
}

// ComputeSimplified applies the flat discount in place of every itemized
// deduction.
func (c *Calculator) ComputeSimplified(gross decimal.Decimal) TaxResult {
	return c.taxOn(gross.Sub(c.tables.SimplifiedDiscount))
}

func (c *Calculator) taxOn(base decimal.Decimal) TaxResult {
	base = decimal.Max(base, decimal.Zero)
	// Tables are validated on construction, so the lookup cannot fail.
	b, _ := c.FindBracket(base)
	tax := decimal.Max(base.Mul(b.Rate).Sub(b.Deduction), decimal.Zero)
	return TaxResult{
		TaxableBase: base,
		Rate:        b.Rate,
		Deduction:   b.Deduction,
		TaxDue:      tax,
	}
}
