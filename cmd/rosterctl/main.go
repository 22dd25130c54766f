// Command rosterctl serves and reports dynasty roster analysis.
//
// Usage:
//
//	rosterctl serve
//	rosterctl table stanford 2029 --view dev-traits --by group
//	rosterctl report stanford 2029 --min-overall 85
//	rosterctl chart stanford 2029
//	rosterctl advance stanford --from 2029 --to 2030
//	rosterctl compare 2029 --universities stanford,fresno_state --view star-elite
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cfbdynasty/roster-stats/internal/config"
	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/workbook"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "College football dynasty roster analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(tableCmd())
	root.AddCommand(reportCmd())
	root.AddCommand(chartCmd())
	root.AddCommand(advanceCmd())
	root.AddCommand(compareCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env bundles what every command needs.
type env struct {
	cfg      *config.Config
	registry *config.Registry
	logger   *zap.Logger
	local    *workbook.LocalSource
	source   logic.RosterSource
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	registry, err := config.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}

	local := &workbook.LocalSource{DataDir: cfg.DataDir, Registry: registry, Logger: logger.Sugar()}
	e := &env{cfg: cfg, registry: registry, logger: logger, local: local, source: local}
	if cfg.RosterURL != "" {
		e.source = workbook.NewRemoteSource(cfg.RosterURL, cfg.FetchTimeout, registry, logger)
	}
	return e, nil
}
