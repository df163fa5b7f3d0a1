package main

import (
	"fmt"
	"strconv"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/config"
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/rpgo/allocation-simulator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <allocation> [asset value]",
		Short: "Rebalance an allocation so its shares sum to 100",
		Long: `Rebalance an allocation so its shares sum to 100.

With only an allocation, the shares are rescaled proportionally. With an asset
and a value, that share is set first and the other three absorb the difference.`,
		Example: `  allocsim normalize 20,40,20,20 active 50
  allocsim normalize 50,50,50,50`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected an allocation, optionally followed by an asset and a value")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := domain.ParseAllocation(args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				a = calculation.NormalizeAll(a)
			} else {
				asset, err := domain.ParseAsset(args[1])
				if err != nil {
					return err
				}
				value, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("value %q must be an integer", args[2])
				}
				a = calculation.Normalize(a, asset, value)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func newClassifyCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "classify <allocation>",
		Short:   "Show the metrics and feedback category of one allocation",
		Example: `  allocsim classify 20,40,20,20`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfiguration()
			if err != nil {
				return err
			}
			a, err := domain.ParseAllocation(args[0])
			if err != nil {
				return err
			}
			a = calculation.NormalizeAll(a)

			m := global.newEngine(cmd, cfg).Model.Compute(a)
			category := calculation.Classify(a)
			text, ok := cfg.TextFor(category)
			if !ok {
				text.Title = string(category)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Allocation:      %s\n", a)
			fmt.Fprintf(w, "Expected return: %s\n", output.FormatSignedPercentage(m.ExpectedReturn))
			fmt.Fprintf(w, "Range:           %s to %s\n", output.FormatSignedPercentage(m.WorstCaseDrawdown), output.FormatSignedPercentage(m.BestCaseReturn))
			fmt.Fprintf(w, "Confidence:      %s\n", output.FormatPercentage(m.ConfidenceScore))
			fmt.Fprintf(w, "Category:        %s\n", category)
			fmt.Fprintf(w, "Feedback:        %s\n", text.Title)
			if calculation.IsOvertrading(a) {
				fmt.Fprintf(w, "WARNING: active share above %d%%\n", calculation.ActiveOvertradingLimit)
			}
			return nil
		},
	}
}

func newInflationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inflation <price-ten-years-ago> <price-now>",
		Short:   "Estimate annual inflation from two prices ten years apart",
		Example: `  allocsim inflation 50 100`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priceOld, err := parseDecimalArg("price ten years ago", args[0])
			if err != nil {
				return err
			}
			priceNow, err := parseDecimalArg("price now", args[1])
			if err != nil {
				return err
			}
			rate, err := calculation.EstimateInflation(priceOld, priceNow)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated annual inflation: %s%%\n", rate.StringFixed(2))
			return nil
		},
	}
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write the built-in example configuration",
		Long:  "Write the built-in example configuration to a file, or to stdout when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 1 {
				if err := config.SaveConfiguration(cfg, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
				return nil
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Configuration is valid: %s\n", args[0])
			fmt.Fprintf(w, "Currency: %s\n", cfg.Defaults.Currency)
			fmt.Fprintf(w, "Current:  %s\n", cfg.Defaults.Current)
			fmt.Fprintf(w, "Target:   %s\n", cfg.Defaults.Target)
			return nil
		},
	}
}
