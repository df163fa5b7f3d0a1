package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rpgo/allocation-simulator/internal/domain"
	pkgdecimal "github.com/rpgo/allocation-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// EnvPrefix prefixes every environment variable the simulator reads
const EnvPrefix = "ALLOCSIM_"

// EnvOverrides are the environment variables that override configured defaults.
// Nil or empty fields leave the configuration untouched. Numbers are parsed
// when the environment is read.
type EnvOverrides struct {
	ConfigPath    string           `env:"CONFIG"`
	Principal     *decimal.Decimal `env:"PRINCIPAL"`
	Contribution  *decimal.Decimal `env:"CONTRIBUTION"`
	InflationRate *decimal.Decimal `env:"INFLATION_RATE"`
	Currency      string           `env:"CURRENCY"`
}

// ReadEnvOverrides loads the ALLOCSIM_* variables from the process environment
func ReadEnvOverrides() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		var pe env.ParseError
		if errors.As(err, &pe) {
			if f, ok := reflect.TypeOf(o).FieldByName(pe.Name); ok {
				return EnvOverrides{}, fmt.Errorf("%s%s: not a number: %w", EnvPrefix, f.Tag.Get("env"), pe.Err)
			}
		}
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Apply writes the set overrides onto the configuration defaults. Nothing is
// written when any override is invalid.
func (o EnvOverrides) Apply(config *domain.Configuration) error {
	if err := nonNegative(EnvPrefix+"PRINCIPAL", o.Principal); err != nil {
		return err
	}
	if err := nonNegative(EnvPrefix+"CONTRIBUTION", o.Contribution); err != nil {
		return err
	}
	if o.InflationRate != nil && o.InflationRate.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("%sINFLATION_RATE cannot be less than -100, got %s", EnvPrefix, o.InflationRate)
	}
	code := strings.ToUpper(strings.TrimSpace(o.Currency))
	if code != "" && !pkgdecimal.KnownCurrency(code) {
		return fmt.Errorf("%sCURRENCY: unknown currency %q", EnvPrefix, o.Currency)
	}

	if o.Principal != nil {
		config.Defaults.Principal = *o.Principal
	}
	if o.Contribution != nil {
		config.Defaults.Contribution = *o.Contribution
	}
	if o.InflationRate != nil {
		config.Defaults.InflationRate = *o.InflationRate
	}
	if code != "" {
		config.Defaults.Currency = code
	}
	return nil
}

// LoadEnvOverrides reads the environment and applies it to config
func LoadEnvOverrides(config *domain.Configuration) (EnvOverrides, error) {
	o, err := ReadEnvOverrides()
	if err != nil {
		return EnvOverrides{}, err
	}
	if err := o.Apply(config); err != nil {
		return EnvOverrides{}, err
	}
	return o, nil
}

func nonNegative(name string, v *decimal.Decimal) error {
	if v != nil && v.IsNegative() {
		return fmt.Errorf("%s cannot be negative, got %s", name, v)
	}
	return nil
}
