package main

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"payroll-engine/internal/config"
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{cfg: config.Load(), logger: zap.NewNop()}
	root := newRootCmd(a)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCalcText(t *testing.T) {
	out, err := run(t, "calc", "--gross", "3.000,00")
	require.NoError(t, err)

	assert.Contains(t, out, "INSS")
	assert.Contains(t, out, "R$ 253,41")
	assert.Contains(t, out, "IRRF (modo simplificado)")
	assert.Contains(t, out, "R$ 2.746,59")
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "--gross", "10000", "--dependents", "2", "--pension", "500", "--mode", "legal", "--json")
	require.NoError(t, err)

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	slip := resp.CalculationResult.Payslip
	require.NotNil(t, slip)
	assert.Equal(t, payroll.ModeUsedLegal, slip.IncomeTax.ModeUsed)
	assert.Equal(t, "1337.80", slip.IncomeTax.Chosen.TaxDue.StringFixed(2))
	assert.Equal(t, "951.62", slip.Contribution.TotalContribution.StringFixed(2))
}

func TestCalcRejectsZeroSalary(t *testing.T) {
	out, err := run(t, "calc", "--gross", "0")
	require.Error(t, err)

	assert.Contains(t, err.Error(), payroll.CodeInvalidSalary)
	assert.Contains(t, out, "CRITICAL")
}

func TestCalcRejectsUnparseableAmount(t *testing.T) {
	_, err := run(t, "calc", "--gross", "NaN")
	assert.ErrorIs(t, err, payroll.ErrInvalidInput)
}

func TestCalcRequiresGross(t *testing.T) {
	_, err := run(t, "calc")
	assert.Error(t, err)
}

func TestCalcBadTablesFile(t *testing.T) {
	_, err := run(t, "--tables-path", "does-not-exist.yaml", "calc", "--gross", "1000")
	assert.ErrorIs(t, err, payroll.ErrConfiguration)
}

func TestTablesText(t *testing.T) {
	out, err := run(t, "tables")
	require.NoError(t, err)

	assert.Contains(t, out, "Tabelas 2025")
	assert.Contains(t, out, "teto R$ 951,62")
	assert.Contains(t, out, "27,5%")
	assert.Contains(t, out, "acima")
}
