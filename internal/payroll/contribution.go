package payroll

import (
	"github.com/shopspring/decimal"
)

// ContributionLine is the share of the salary taxed inside one bracket.
type ContributionLine struct {
	BaseAmount decimal.Decimal `json:"base_amount"`
	Rate       decimal.Decimal `json:"rate"`
	AmountDue  decimal.Decimal `json:"amount_due"`
}

// ContributionResult is the INSS due on a gross salary.
type ContributionResult struct {
	TotalContribution decimal.Decimal    `json:"total_contribution"`
	Lines             []ContributionLine `json:"lines"`
	// CeilingApplied is set when the ceiling clamped the bracket total.
	CeilingApplied bool `json:"ceiling_applied"`
}

// ComputeContribution walks the contribution brackets, taxing each slice of
// the salary at its own rate. The sum is truncated to cents and then capped
// at the configured ceiling. Non-positive salaries yield a zero result.
func (c *Calculator) ComputeContribution(gross decimal.Decimal) ContributionResult {
	res := ContributionResult{TotalContribution: decimal.Zero, Lines: []ContributionLine{}}
	if !gross.IsPositive() {
		return res
	}

	remaining := gross
	floor := decimal.Zero
	total := decimal.Zero
	for _, b := range c.tables.ContributionBrackets {
		slice := decimal.Min(remaining, b.UpperLimit.Sub(floor))
		if slice.IsNegative() {
			slice = decimal.Zero
		}
		due := slice.Mul(b.Rate)
		if slice.IsPositive() {
			res.Lines = append(res.Lines, ContributionLine{BaseAmount: slice, Rate: b.Rate, AmountDue: due})
		}
		total = total.Add(due)
		remaining = remaining.Sub(slice)
		floor = b.UpperLimit
		if !remaining.IsPositive() {
			break
		}
	}

	total = total.Truncate(2)
	if total.GreaterThan(c.tables.ContributionCeiling) {
		total = c.tables.ContributionCeiling
		res.CeilingApplied = true
	}
	res.TotalContribution = total
	return res
}
