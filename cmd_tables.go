package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"payroll-engine/internal/brl"
)

func newTablesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the bracket tables in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tables, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				body, err := json.MarshalIndent(tables, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(body))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Tabelas %d\n", tables.Year)
			fmt.Fprintf(tw, "INSS (teto %s)\n", brl.Money(tables.ContributionCeiling))
			for _, b := range tables.ContributionBrackets {
				fmt.Fprintf(tw, "  até %s\t%s\n", brl.Money(b.UpperLimit), brl.Percent(b.Rate))
			}
			fmt.Fprintln(tw, "IRRF")
			for _, b := range tables.TaxBrackets {
				limit := "acima"
				if !b.Unbounded() {
					limit = "até " + brl.Money(*b.UpperBound)
				}
				fmt.Fprintf(tw, "  %s\t%s\tdedução %s\n", limit, brl.Percent(b.Rate), brl.Money(b.Deduction))
			}
			fmt.Fprintf(tw, "Dedução por dependente\t%s\n", brl.Money(tables.DependentDeduction))
			fmt.Fprintf(tw, "Desconto simplificado\t%s\n", brl.Money(tables.SimplifiedDiscount))
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
