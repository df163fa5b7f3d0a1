package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/config"
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand
type globalOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "allocsim",
		Short: "Compare two asset allocations over a 20-year horizon",
		Long: `allocsim compares a current and a target allocation across cash, index funds,
real estate and active trading. It projects both with monthly compounding,
estimates the wealth gap at year 20 and classifies the target into a feedback
category.

Environment variables prefixed with ` + config.EnvPrefix + ` override configured defaults.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML); defaults to the built-in example")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the calculation breakdown to stderr")

	root.AddCommand(
		newSimulateCmd(opts),
		newNormalizeCmd(),
		newClassifyCmd(opts),
		newInflationCmd(),
		newExampleConfigCmd(),
		newValidateCmd(),
	)
	return root
}

// loadConfiguration resolves the configuration: the --config file, then
// ALLOCSIM_CONFIG, then the built-in example. Environment overrides are
// applied on top.
func (o *globalOptions) loadConfiguration() (*domain.Configuration, error) {
	overrides, err := config.ReadEnvOverrides()
	if err != nil {
		return nil, err
	}

	parser := config.NewInputParser()
	path := o.configPath
	if path == "" {
		path = overrides.ConfigPath
	}

	var cfg *domain.Configuration
	if path != "" {
		cfg, err = parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = parser.CreateExampleConfiguration()
	}

	if err := overrides.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *globalOptions) newEngine(cmd *cobra.Command, cfg *domain.Configuration) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine(cfg)
	if o.verbose {
		engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), true))
		engine.Debug = true
	}
	return engine
}

// decimalFlag parses a string flag into dst when the user set it
func decimalFlag(cmd *cobra.Command, name string, dst *decimal.Decimal) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("--%s: %q is not a number", name, raw)
	}
	*dst = v
	return nil
}

// parseDecimalArg parses a positional numeric argument
func parseDecimalArg(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", name, raw)
	}
	return v, nil
}
