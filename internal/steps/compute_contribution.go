package steps

import (
	"fmt"

	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

type ComputeContributionStep struct {
	calc *payroll.Calculator
}

func (s *ComputeContributionStep) Validate(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	return nil
}

func (s *ComputeContributionStep) Apply(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	slip.Contribution = s.calc.ComputeContribution(slip.GrossSalary)

	if slip.Contribution.CeilingApplied {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    model.CodeContributionCeilingApplied,
			Message: fmt.Sprintf("Contribution capped at %s", slip.Contribution.TotalContribution.StringFixed(2)),
		}}
	}
	return nil
}
