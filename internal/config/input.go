package config

import (
	"fmt"
	"os"

	"github.com/rpgo/allocation-simulator/internal/calculation"
	"github.com/rpgo/allocation-simulator/internal/domain"
	pkgdecimal "github.com/rpgo/allocation-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultCurrency is used when the configuration does not name one
const DefaultCurrency = "TWD"

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a configuration document, fills in defaults and validates it
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	ip.ApplyDefaults(&config)

	return &config, nil
}

// ApplyDefaults fills optional fields: the currency, normalized default
// allocations and the built-in text of any category without one. A category
// with a body but no title gets only the built-in title.
// Call it after ValidateConfiguration.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Defaults.Currency == "" {
		config.Defaults.Currency = DefaultCurrency
	}
	config.Defaults.Current = calculation.NormalizeAll(config.Defaults.Current)
	config.Defaults.Target = calculation.NormalizeAll(config.Defaults.Target)

	if config.ScenarioText == nil {
		config.ScenarioText = make(map[domain.ScenarioCategory]domain.ScenarioText)
	}
	for category, text := range DefaultScenarioText() {
		existing, ok := config.ScenarioText[category]
		switch {
		case !ok || (existing.Title == "" && existing.Body == ""):
			config.ScenarioText[category] = text
		case existing.Title == "":
			// a body without a title keeps the body
			existing.Title = text.Title
			config.ScenarioText[category] = existing
		}
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateRates(&config.Rates); err != nil {
		return fmt.Errorf("rates validation failed: %w", err)
	}
	if err := ip.validateTable("risk", config.Risk, decimal.NewFromInt(-100), decimal.Zero); err != nil {
		return err
	}
	if err := ip.validateTable("probability", config.Probability, decimal.Zero, decimal.NewFromInt(100)); err != nil {
		return err
	}
	if err := ip.validateDefaults(&config.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}
	for category := range config.ScenarioText {
		if _, err := domain.ParseCategory(string(category)); err != nil {
			return fmt.Errorf("scenario_text: %w", err)
		}
	}
	return nil
}

// validateRates rejects a missing rate table. Individual rates may be negative.
func (ip *InputParser) validateRates(rates *domain.RateTable) error {
	if rates.Cash.IsZero() && rates.IndexFund.IsZero() && rates.RealEstate.IsZero() &&
		rates.ActiveAverage.IsZero() && rates.ActiveBest.IsZero() && rates.ActivePenalty.IsZero() {
		return fmt.Errorf("no rates provided")
	}
	if rates.ActiveBest.LessThan(rates.ActiveAverage) {
		return fmt.Errorf("active best-case rate %s cannot be below the average %s", rates.ActiveBest, rates.ActiveAverage)
	}
	if rates.ActivePenalty.GreaterThan(rates.ActiveAverage) {
		return fmt.Errorf("active penalty rate %s cannot exceed the average %s", rates.ActivePenalty, rates.ActiveAverage)
	}
	return nil
}

// validateTable checks every per-asset value lies in [min, max]
func (ip *InputParser) validateTable(name string, table domain.AssetValues, min, max decimal.Decimal) error {
	for _, asset := range domain.Assets() {
		v := table.For(asset)
		if v.LessThan(min) || v.GreaterThan(max) {
			return fmt.Errorf("%s.%s must be between %s and %s, got %s", name, asset, min, max, v)
		}
	}
	return nil
}

func (ip *InputParser) validateDefaults(defaults *domain.Defaults) error {
	if defaults.Principal.IsNegative() {
		return fmt.Errorf("principal cannot be negative")
	}
	if defaults.Contribution.IsNegative() {
		return fmt.Errorf("contribution cannot be negative")
	}
	if defaults.InflationRate.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("inflation rate cannot be less than -100%%")
	}
	if defaults.Currency != "" && !pkgdecimal.KnownCurrency(defaults.Currency) {
		return fmt.Errorf("unknown currency %q", defaults.Currency)
	}
	for _, slot := range []struct {
		name string
		a    domain.Allocation
	}{{"current", defaults.Current}, {"target", defaults.Target}} {
		for _, asset := range domain.Assets() {
			if v := slot.a.Get(asset); v < 0 || v > domain.TotalPercent {
				return fmt.Errorf("%s.%s must be between 0 and %d, got %d", slot.name, asset, domain.TotalPercent, v)
			}
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Rates: domain.RateTable{
			Cash:          decimal.NewFromFloat(1.5),
			IndexFund:     decimal.NewFromFloat(8.0),
			RealEstate:    decimal.NewFromFloat(5.5),
			ActiveAverage: decimal.NewFromFloat(15.0),
			ActiveBest:    decimal.NewFromFloat(120.0),
			ActivePenalty: decimal.NewFromFloat(-50.0),
		},
		Risk: domain.RiskTable{
			Cash:       decimal.Zero,
			IndexFund:  decimal.NewFromInt(-45),
			RealEstate: decimal.NewFromInt(-25),
			Active:     decimal.NewFromInt(-100),
		},
		Probability: domain.ProbabilityTable{
			Cash:       decimal.NewFromInt(99),
			IndexFund:  decimal.NewFromInt(95),
			RealEstate: decimal.NewFromInt(90),
			Active:     decimal.NewFromInt(10),
		},
		Defaults: domain.Defaults{
			Principal:     decimal.NewFromInt(1000000),
			Contribution:  decimal.NewFromInt(20000),
			InflationRate: decimal.NewFromFloat(2.5),
			Currency:      DefaultCurrency,
			Current:       domain.DefaultAllocation(),
			Target:        domain.DefaultAllocation(),
		},
		ScenarioText: DefaultScenarioText(),
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
