package steps

import "payroll-engine/internal/payroll"

const (
	NameValidateInput       = "validate_input"
	NameComputeContribution = "compute_contribution"
	NameComputeIncomeTax    = "compute_income_tax"
	NameResolveMode         = "resolve_mode"
)

// Entry is a named step in the pipeline.
type Entry struct {
	Name string
	Step Step
}

// Pipeline returns the calculation stages in the order they must run.
func Pipeline(calc *payroll.Calculator) []Entry {
	return []Entry{
		{Name: NameValidateInput, Step: &ValidateInputStep{}},
		{Name: NameComputeContribution, Step: &ComputeContributionStep{calc: calc}},
		{Name: NameComputeIncomeTax, Step: &ComputeIncomeTaxStep{calc: calc}},
		{Name: NameResolveMode, Step: &ResolveModeStep{}},
	}
}
