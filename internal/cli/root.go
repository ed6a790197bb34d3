// SPDX-License-Identifier: MIT

// Package cli implements the decolab command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/decolab/internal/config"
	"github.com/katalvlaran/decolab/internal/logging"
	"github.com/katalvlaran/decolab/profile"
	"github.com/katalvlaran/decolab/tissue"
	"github.com/katalvlaran/decolab/walker"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the decolab command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "decolab",
		Short: "Bühlmann ZH-L16 tissue loading calculator",
		Long: `decolab integrates inert-gas loading of the 16 Bühlmann ZH-L16
compartments across multi-gas dive profiles and derives M-values,
gradient-factor ceilings and first-stop depths.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	// Global flags
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/decolab/config.yaml)")
	pf.String("variant", "", "compartment variant: A, B or C")
	pf.StringP("output", "o", "", "output format: table or json")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.Float64("step", 0, "integration step in seconds")
	_ = a.v.BindPFlag("model.variant", pf.Lookup("variant"))
	_ = a.v.BindPFlag("output.format", pf.Lookup("output"))
	_ = a.v.BindPFlag("logging.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("model.step_seconds", pf.Lookup("step"))

	root.AddCommand(
		a.calcCmd(),
		a.ceilingCmd(),
		a.compartmentsCmd(),
		a.serveCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.Setup(a.v, a.cfgFile); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return errs
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	table := tissue.SetVariant(cfg.Variant())
	a.logger.Debug("compartment table active",
		slog.String("variant", table.Variant().String()),
		slog.Uint64("version", table.Version()))

	return nil
}

func (a *app) jsonOutput() bool {
	return strings.EqualFold(a.cfg.Output.Format, "json")
}

// calculate loads the setup at path and runs every dive against the
// active table. Gradient factors missing from the file come from config.
func (a *app) calculate(ctx context.Context, path string) (*profile.DiveSetup, []*walker.Result, error) {
	setup, err := profile.LoadSetupWith(path, profile.DiveSetup{
		GFLow:  a.cfg.Model.GFLow,
		GFHigh: a.cfg.Model.GFHigh,
	})
	if err != nil {
		return nil, nil, err
	}

	results, err := walker.CalculateSetup(ctx, setup,
		walker.WithTable(tissue.Active()),
		walker.WithStepSeconds(a.cfg.Model.StepSeconds),
		walker.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}
	return setup, results, nil
}
