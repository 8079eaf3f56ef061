// Package payroll computes INSS contributions, IRRF withholding under the
// legal and simplified methods, and the resulting net pay.
//
// A Calculator is immutable once built and safe for concurrent use.
package payroll

import (
	"github.com/shopspring/decimal"
)

// Calculator binds the pure calculation functions to one validated table set.
type Calculator struct {
	tables Tables
}

// NewCalculator validates the tables and returns a calculator over a
// private copy of them.
func NewCalculator(t Tables) (*Calculator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{tables: t.clone()}, nil
}

// Tables returns a copy of the tables the calculator was built with.
func (c *Calculator) Tables() Tables {
	return c.tables.clone()
}

// Payslip is the full result of one calculation.
type Payslip struct {
	Input        CalculationInput   `json:"-"`
	Contribution ContributionResult `json:"contribution"`
	Legal        TaxResult          `json:"legal"`
	Simplified   TaxResult          `json:"simplified"`
	Chosen       TaxResult          `json:"chosen"`
	ModeUsed     string             `json:"mode_used"`
	NetSalary    decimal.Decimal    `json:"net_salary"`
}

// Calculate validates the input and runs contribution, both tax methods and
// the mode resolver in sequence. Nothing is computed on invalid input.
//
// This is the library entry point. The HTTP and CLI pipeline runs the same
// stages one at a time through IncomeTax and Settle.
func (c *Calculator) Calculate(in CalculationInput) (*Payslip, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	contribution := c.ComputeContribution(in.GrossSalary)
	legal, simplified := c.IncomeTax(in, contribution)
	return Settle(in, contribution, legal, simplified), nil
}

// IncomeTax computes the withholding under both methods.
func (c *Calculator) IncomeTax(in CalculationInput, contribution ContributionResult) (legal, simplified TaxResult) {
	legal = c.ComputeLegal(in.GrossSalary, contribution.TotalContribution, in.DependentCount, in.PensionAmount)
	simplified = c.ComputeSimplified(in.GrossSalary)
	return legal, simplified
}

// Settle picks the method for in.Mode and derives net pay.
func Settle(in CalculationInput, contribution ContributionResult, legal, simplified TaxResult) *Payslip {
	res := Resolve(in.Mode, legal, simplified)
	return &Payslip{
		Input:        in,
		Contribution: contribution,
		Legal:        legal,
		Simplified:   simplified,
		Chosen:       res.Chosen,
		ModeUsed:     res.ModeUsed,
		NetSalary:    NetSalary(in.GrossSalary, contribution, res.Chosen),
	}
}

// NetSalary is gross minus the contribution and the chosen withholding.
func NetSalary(gross decimal.Decimal, contribution ContributionResult, chosen TaxResult) decimal.Decimal {
	return gross.Sub(contribution.TotalContribution).Sub(chosen.TaxDue)
}

func (t Tables) clone() Tables {
	out := t
	out.ContributionBrackets = append([]ContributionBracket(nil), t.ContributionBrackets...)
	out.TaxBrackets = make([]TaxBracket, len(t.TaxBrackets))
	for i, b := range t.TaxBrackets {
		out.TaxBrackets[i] = b
		if b.UpperBound != nil {
			ub := *b.UpperBound
			out.TaxBrackets[i].UpperBound = &ub
		}
	}
	return out
}
