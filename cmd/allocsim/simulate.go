package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/domain"
	"github.com/rpgo/allocation-simulator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	current   string
	targets   []string
	edits     []string
	format    string
	outputDir string
}

func newSimulateCmd(global *globalOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project the current allocation against one or more targets",
		Long: `Project the current allocation against one or more targets and print a report.

Allocations are given as "cash,index_fund,real_estate,active", for example
--target 20,40,20,20. Shares that do not sum to 100 are normalized. Repeat
--target to compare several candidates in one report.

--set applies a single-share edit such as target.active=30. Edits run in order
and each one rebalances the other shares of that slot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, global, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.current, "current", "", "current allocation (defaults to the configured one)")
	f.StringArrayVarP(&opts.targets, "target", "t", nil, "target allocation (repeatable)")
	f.StringArrayVar(&opts.edits, "set", nil, "edit one share, slot.asset=value (repeatable, single target only)")
	f.String("principal", "", "initial capital")
	f.String("contribution", "", "monthly contribution")
	f.String("inflation", "", "annual inflation rate in percent")
	f.String("price-old", "", "price of an item ten years ago; with --price-now estimates inflation")
	f.String("price-now", "", "price of the same item today")
	f.StringVarP(&opts.format, "format", "f", "console", "report format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.StringVarP(&opts.outputDir, "output", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}

func runSimulate(cmd *cobra.Command, global *globalOptions, opts *simulateOptions) error {
	cfg, err := global.loadConfiguration()
	if err != nil {
		return err
	}
	defaults := cfg.Defaults

	if err := decimalFlag(cmd, "principal", &defaults.Principal); err != nil {
		return err
	}
	if err := decimalFlag(cmd, "contribution", &defaults.Contribution); err != nil {
		return err
	}
	if err := decimalFlag(cmd, "inflation", &defaults.InflationRate); err != nil {
		return err
	}
	if err := applyPriceObservation(cmd, &defaults); err != nil {
		return err
	}

	if opts.current != "" {
		if defaults.Current, err = domain.ParseAllocation(opts.current); err != nil {
			return err
		}
	}
	targets := []domain.Allocation{defaults.Target}
	if len(opts.targets) > 0 {
		targets = targets[:0]
		for _, raw := range opts.targets {
			a, err := domain.ParseAllocation(raw)
			if err != nil {
				return err
			}
			targets = append(targets, a)
		}
	}
	if len(opts.edits) > 0 && len(targets) > 1 {
		return fmt.Errorf("--set cannot be combined with more than one --target")
	}

	engine := global.newEngine(cmd, cfg)

	var results []*domain.SimulationResult
	if len(targets) == 1 {
		defaults.Target = targets[0]
		session, err := calculation.NewSession(engine, defaults)
		if err != nil {
			return err
		}
		for _, raw := range opts.edits {
			slot, asset, value, err := parseEdit(raw)
			if err != nil {
				return err
			}
			if _, err := session.Edit(slot, asset, value); err != nil {
				return err
			}
		}
		results = append(results, session.Result())
	} else {
		normalized := make([]domain.Allocation, len(targets))
		for i, t := range targets {
			normalized[i] = calculation.NormalizeAll(t)
		}
		results, err = engine.CompareTargets(calculation.NormalizeAll(defaults.Current), normalized,
			defaults.Principal, defaults.Contribution, defaults.InflationRate)
		if err != nil {
			return err
		}
	}

	report := output.NewReport(cfg, results...)
	if opts.outputDir != "" {
		path, err := output.WriteReportFile(opts.outputDir, report, opts.format)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	return output.GenerateReport(cmd.OutOrStdout(), report, opts.format)
}

// applyPriceObservation replaces the inflation rate with one estimated from
// two prices ten years apart. Both prices must be given together.
func applyPriceObservation(cmd *cobra.Command, defaults *domain.Defaults) error {
	oldSet, nowSet := cmd.Flags().Changed("price-old"), cmd.Flags().Changed("price-now")
	if !oldSet && !nowSet {
		return nil
	}
	if oldSet != nowSet {
		return fmt.Errorf("--price-old and --price-now must be given together")
	}
	if cmd.Flags().Changed("inflation") {
		return fmt.Errorf("--inflation cannot be combined with --price-old/--price-now")
	}

	var priceOld, priceNow decimal.Decimal
	if err := decimalFlag(cmd, "price-old", &priceOld); err != nil {
		return err
	}
	if err := decimalFlag(cmd, "price-now", &priceNow); err != nil {
		return err
	}
	rate, err := calculation.EstimateInflation(priceOld, priceNow)
	if err != nil {
		return err
	}
	defaults.InflationRate = rate
	return nil
}

// parseEdit parses "slot.asset=value", e.g. "target.active=30"
func parseEdit(raw string) (domain.Slot, domain.Asset, int, error) {
	key, val, ok := strings.Cut(raw, "=")
	if !ok {
		return "", "", 0, fmt.Errorf("--set %q: expected slot.asset=value", raw)
	}
	slotName, assetName, ok := strings.Cut(key, ".")
	if !ok {
		return "", "", 0, fmt.Errorf("--set %q: expected slot.asset=value", raw)
	}
	slot, err := domain.ParseSlot(slotName)
	if err != nil {
		return "", "", 0, fmt.Errorf("--set %q: %w", raw, err)
	}
	asset, err := domain.ParseAsset(assetName)
	if err != nil {
		return "", "", 0, fmt.Errorf("--set %q: %w", raw, err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return "", "", 0, fmt.Errorf("--set %q: value must be an integer", raw)
	}
	return slot, asset, value, nil
}
