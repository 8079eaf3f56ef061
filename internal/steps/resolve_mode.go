package steps

import (
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

type ResolveModeStep struct{}

func (s *ResolveModeStep) Validate(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	return nil
}

func (s *ResolveModeStep) Apply(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	settled := payroll.Settle(slip.Input(), slip.Contribution, slip.IncomeTax.Legal, slip.IncomeTax.Simplified)

	slip.IncomeTax.Chosen = settled.Chosen
	slip.IncomeTax.ModeUsed = settled.ModeUsed
	slip.NetSalary = settled.NetSalary

	return nil
}
