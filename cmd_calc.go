package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"payroll-engine/internal/brl"
	"payroll-engine/internal/model"
)

type calcOptions struct {
	gross      string
	dependents int
	pension    string
	mode       string
	asJSON     bool
}

func newCalcCmd(a *app) *cobra.Command {
	opts := &calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate deductions and net pay for one salary",
		Example: `  payroll-engine calc --gross 3.000,00
  payroll-engine calc --gross 8500 --dependents 2 --pension "R$ 400,00" --mode legal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, a, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.gross, "gross", "g", "", "Gross monthly salary")
	cmd.Flags().IntVarP(&opts.dependents, "dependents", "d", 0, "Number of dependents")
	cmd.Flags().StringVar(&opts.pension, "pension", "0", "Alimony paid by court order")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "auto", "auto, legal or simplified")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the full JSON response")
	_ = cmd.MarkFlagRequired("gross")
	return cmd
}

func runCalc(cmd *cobra.Command, a *app, opts *calcOptions) error {
	gross, err := brl.Parse(opts.gross)
	if err != nil {
		return fmt.Errorf("--gross: %w", err)
	}
	pension, err := brl.Parse(opts.pension)
	if err != nil {
		return fmt.Errorf("--pension: %w", err)
	}

	eng, _, err := a.loadEngine(cmd.Context())
	if err != nil {
		return err
	}

	resp := eng.Process(&model.CalculationRequest{
		GrossSalary: gross,
		Dependents:  opts.dependents,
		Pension:     pension,
		Mode:        opts.mode,
	})

	out := cmd.OutOrStdout()
	if opts.asJSON {
		body, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(body))
	} else {
		printPayslip(out, resp)
	}

	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		var codes []string
		for _, m := range resp.CalculationResult.Messages {
			if m.Level == model.LevelCritical {
				codes = append(codes, m.Code)
			}
		}
		return fmt.Errorf("calculation failed: %s", strings.Join(codes, ", "))
	}
	return nil
}

func printPayslip(out io.Writer, resp *model.CalculationResponse) {
	for _, m := range resp.CalculationResult.Messages {
		fmt.Fprintf(out, "%s %s: %s\n", m.Level, m.Code, m.Message)
	}

	slip := resp.CalculationResult.Payslip
	if slip == nil {
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "INSS")
	fmt.Fprintln(tw, "  Base\tAlíquota\tValor")
	for _, l := range slip.Contribution.Lines {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", brl.Money(l.BaseAmount), brl.Percent(l.Rate), brl.Money(l.AmountDue))
	}
	fmt.Fprintf(tw, "  Total\t\t%s\n", brl.Money(slip.Contribution.TotalContribution))

	tax := slip.IncomeTax.Chosen
	fmt.Fprintf(tw, "IRRF (modo %s)\n", slip.IncomeTax.ModeUsed)
	fmt.Fprintln(tw, "  Base\tAlíquota\tDedução\tIRRF")
	fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", brl.Money(tax.TaxableBase), brl.Percent(tax.Rate), brl.Money(tax.Deduction), brl.Money(tax.TaxDue))

	fmt.Fprintf(tw, "Líquido\t%s\n", brl.Money(slip.NetSalary))
	tw.Flush()
}
