package steps

import (
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

type ComputeIncomeTaxStep struct {
	calc *payroll.Calculator
}

func (s *ComputeIncomeTaxStep) Validate(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	return nil
}

func (s *ComputeIncomeTaxStep) Apply(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	slip.IncomeTax.Legal, slip.IncomeTax.Simplified = s.calc.IncomeTax(slip.Input(), slip.Contribution)
	return nil
}
