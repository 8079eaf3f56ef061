package engine

import (
	"time"

	"github.com/google/uuid"

	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
	"payroll-engine/internal/steps"
)

// Engine runs the calculation pipeline. It holds no per-call state and may
// be shared between goroutines.
type Engine struct {
	pipeline []steps.Entry
}

func New(calc *payroll.Calculator) *Engine {
	return &Engine{pipeline: steps.Pipeline(calc)}
}

func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	slip := &model.Payslip{}

	var allMessages []model.CalculationMessage
	var processedSteps []model.ProcessedStep
	hasCritical := false

	for _, entry := range e.pipeline {
		// Validate
		var msgIndexes []int
		for _, vm := range entry.Step.Validate(slip, req) {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			processedSteps = append(processedSteps, model.ProcessedStep{
				Name:                      entry.Name,
				CalculationMessageIndexes: msgIndexes,
			})
			break
		}

		// Apply
		for _, am := range entry.Step.Apply(slip, req) {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		processedSteps = append(processedSteps, model.ProcessedStep{
			Name:                      entry.Name,
			CalculationMessageIndexes: msgIndexes,
		})

		if hasCritical {
			break
		}
	}

	outcome := model.OutcomeSuccess
	if hasCritical {
		// No partial payslip leaves the engine.
		outcome = model.OutcomeFailure
		slip = nil
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages: allMessages,
			Steps:    processedSteps,
			Payslip:  slip,
		},
	}
}
