package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payroll-engine/internal/config"
	"payroll-engine/internal/engine"
	"payroll-engine/internal/payroll"
	"payroll-engine/internal/tableregistry"
)

// app carries what every subcommand shares.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	verbose    bool
	tablesPath string
	tablesURL  string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "payroll-engine",
		Short: "INSS and IRRF payroll deductions with net pay",
		Long: `payroll-engine computes the INSS contribution, the IRRF withholding under
the legal and simplified methods, and the resulting net salary.

Run "serve" for the HTTP API or "calc" for a one-off calculation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.tablesPath, "tables-path", a.cfg.Tables.Path, "YAML file with the bracket tables (env TAX_TABLES_PATH)")
	root.PersistentFlags().StringVar(&a.tablesURL, "tables-url", a.cfg.Tables.URL, "Table registry base URL (env TAX_TABLES_URL)")

	root.AddCommand(newServeCmd(a), newCalcCmd(a), newTablesCmd(a))
	return root
}

func (a *app) initLogger() error {
	if a.logger != nil {
		return nil
	}

	level, err := zapcore.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// loadEngine resolves the table set once and builds the engine over it.
func (a *app) loadEngine(ctx context.Context) (*engine.Engine, payroll.Tables, error) {
	src := tableregistry.Source{
		URL:     a.tablesURL,
		Path:    a.tablesPath,
		Timeout: a.cfg.Tables.Timeout,
	}

	tables, err := tableregistry.Load(ctx, src)
	if err != nil {
		return nil, payroll.Tables{}, err
	}
	calc, err := payroll.NewCalculator(tables)
	if err != nil {
		return nil, payroll.Tables{}, err
	}

	a.logger.Debug("Tables loaded",
		zap.String("origin", src.Origin()),
		zap.Int("year", tables.Year),
		zap.Int("contribution_brackets", len(tables.ContributionBrackets)),
		zap.Int("tax_brackets", len(tables.TaxBrackets)),
	)
	return engine.New(calc), tables, nil
}

func main() {
	a := &app{cfg: config.Load()}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
