package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Warning codes. Critical codes come from payroll input errors.
const (
	CodePensionExceedsSalary       = "PENSION_EXCEEDS_SALARY"
	CodeContributionCeilingApplied = "CONTRIBUTION_CEILING_APPLIED"
	CodeModeDefaulted              = "MODE_DEFAULTED"
)
