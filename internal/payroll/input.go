package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Mode selects the income-tax method. The zero value means ModeAuto.
type Mode string

const (
	ModeAuto       Mode = "auto"
	ModeLegal      Mode = "legal"
	ModeSimplified Mode = "simplified"
)

// ParseMode accepts the English names, the Portuguese "simplificado" and
// the empty string, which means auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "legal":
		return ModeLegal, nil
	case "simplified", "simplificado":
		return ModeSimplified, nil
	}
	return "", &InputError{Field: "mode", Code: CodeInvalidMode, Reason: "must be one of auto, legal, simplified"}
}

// CalculationInput is what the caller collects from the worker.
type CalculationInput struct {
	GrossSalary    decimal.Decimal
	DependentCount int
	PensionAmount  decimal.Decimal
	Mode           Mode
}

// Validate rejects input the engine must not compute on. The returned
// error is always an *InputError.
func (in CalculationInput) Validate() error {
	if !in.GrossSalary.IsPositive() {
		return &InputError{Field: "gross_salary", Code: CodeInvalidSalary, Reason: "must be greater than zero"}
	}
	if in.DependentCount < 0 {
		return &InputError{Field: "dependents", Code: CodeInvalidDependents, Reason: "must not be negative"}
	}
	if in.PensionAmount.IsNegative() {
		return &InputError{Field: "pension", Code: CodeInvalidPension, Reason: "must not be negative"}
	}
	switch in.Mode {
	case "", ModeAuto, ModeLegal, ModeSimplified:
	default:
		return &InputError{Field: "mode", Code: CodeInvalidMode, Reason: "must be one of auto, legal, simplified"}
	}
	return nil
}
