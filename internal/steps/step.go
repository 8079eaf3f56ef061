package steps

import "payroll-engine/internal/model"

// Step defines the contract for one stage of a payroll calculation.
// Validate reports problems without touching the payslip; Apply fills in
// the part of the payslip the step owns.
type Step interface {
	Validate(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage
	Apply(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage
}
