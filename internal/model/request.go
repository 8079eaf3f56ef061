package model

import "github.com/shopspring/decimal"

// CalculationRequest is the body of POST /calculate. Amounts may be sent as
// JSON numbers or strings.
type CalculationRequest struct {
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Dependents  int             `json:"dependents"`
	Pension     decimal.Decimal `json:"pension"`
	Mode        string          `json:"mode,omitempty"`
}
