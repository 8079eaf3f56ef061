package model

import (
	"github.com/shopspring/decimal"

	"payroll-engine/internal/payroll"
)

// Payslip is the state the calculation steps build up.
type Payslip struct {
	GrossSalary   decimal.Decimal            `json:"gross_salary"`
	Dependents    int                        `json:"dependents"`
	Pension       decimal.Decimal            `json:"pension"`
	ModeRequested payroll.Mode               `json:"mode_requested"`
	Contribution  payroll.ContributionResult `json:"contribution"`
	IncomeTax     IncomeTax                  `json:"income_tax"`
	NetSalary     decimal.Decimal            `json:"net_salary"`
}

type IncomeTax struct {
	Legal      payroll.TaxResult `json:"legal"`
	Simplified payroll.TaxResult `json:"simplified"`
	Chosen     payroll.TaxResult `json:"chosen"`
	ModeUsed   string            `json:"mode_used"`
}

// Input returns the core calculation input the payslip was built from.
func (p *Payslip) Input() payroll.CalculationInput {
	return payroll.CalculationInput{
		GrossSalary:    p.GrossSalary,
		DependentCount: p.Dependents,
		PensionAmount:  p.Pension,
		Mode:           p.ModeRequested,
	}
}
