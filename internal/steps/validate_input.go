package steps

import (
	"errors"
	"fmt"

	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

type ValidateInputStep struct{}

func (s *ValidateInputStep) Validate(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	mode, err := payroll.ParseMode(req.Mode)
	if err != nil {
		return append(msgs, critical(err))
	}

	in := payroll.CalculationInput{
		GrossSalary:    req.GrossSalary,
		DependentCount: req.Dependents,
		PensionAmount:  req.Pension,
		Mode:           mode,
	}
	if err := in.Validate(); err != nil {
		return append(msgs, critical(err))
	}

	if req.Mode == "" {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeModeDefaulted,
			Message: "No mode given, using auto",
		})
	}

	// Legal but unusual: the legal base will clamp to zero.
	if req.Pension.GreaterThan(req.GrossSalary) {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodePensionExceedsSalary,
			Message: fmt.Sprintf("Pension %s exceeds gross salary %s", req.Pension.StringFixed(2), req.GrossSalary.StringFixed(2)),
		})
	}

	return msgs
}

func (s *ValidateInputStep) Apply(slip *model.Payslip, req *model.CalculationRequest) []model.CalculationMessage {
	mode, _ := payroll.ParseMode(req.Mode)

	slip.GrossSalary = req.GrossSalary
	slip.Dependents = req.Dependents
	slip.Pension = req.Pension
	slip.ModeRequested = mode

	return nil
}

func critical(err error) model.CalculationMessage {
	code := "INVALID_INPUT"
	var inErr *payroll.InputError
	if errors.As(err, &inErr) {
		code = inErr.Code
	}
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Message: err.Error(),
	}
}
