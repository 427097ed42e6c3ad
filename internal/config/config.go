// Package config defines the data structures related to proposal
// configuration and includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/satriyop/solar-forecast/pkg/constants"
	"github.com/satriyop/solar-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for solar-forecast.
type Configuration struct {
	Proposals []Proposal
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Proposal describes one candidate solar installation to evaluate.
type Proposal struct {
	Name               string
	Active             bool
	SystemCost         float64
	Financing          Financing
	Site               Site
	Battery            Battery
	Tariff             Tariff
	DegradationPercent float64
	HorizonYears       int
}

// Financing describes how the system purchase is funded.
type Financing struct {
	Method            string // cash, loan, lease
	DownPayment       float64
	AnnualRatePercent float64
	TermYears         int
	ResidualPercent   float64
	MoneyFactor       float64
}

// Site holds the production and consumption profile of the installation site.
type Site struct {
	AnnualProductionKwh      float64
	DailyProductionKwh       float64
	DailyConsumptionKwh      float64
	BaseSelfConsumptionRatio float64
	MaxSelfConsumptionRatio  float64
	ActiveHoursPerDay        float64
}

// Battery holds the optional storage attachment. A zero capacity means the
// proposal has no battery.
type Battery struct {
	CapacityKwh         float64
	RoundTripEfficiency float64
	RecommendedRatio    float64
}

// Tariff holds the grid electricity pricing assumptions.
type Tariff struct {
	RatePerKwh        float64
	EscalationPercent float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// arbitrary reader, used by the HTTP upload path.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills optional fields the way the original proposal forms
// pre-populated them.
func (c *Configuration) applyDefaults() {
	for i := range c.Proposals {
		p := &c.Proposals[i]
		if p.Site.ActiveHoursPerDay == 0 {
			p.Site.ActiveHoursPerDay = constants.DefaultActiveHours
		}
		if p.Battery.CapacityKwh > 0 && p.Battery.RoundTripEfficiency == 0 {
			p.Battery.RoundTripEfficiency = constants.DefaultRoundTripEfficiency
		}
		if p.Battery.RecommendedRatio == 0 {
			p.Battery.RecommendedRatio = constants.DefaultRecommendedRatio
		}
		if p.Financing.Method == "" {
			p.Financing.Method = constants.FinancingCash
		}
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never block evaluation.
func (c *Configuration) ValidateConfiguration() []string {
	proposals := make([]validation.ProposalConfig, 0, len(c.Proposals))
	for _, p := range c.Proposals {
		proposals = append(proposals, validation.ProposalConfig{
			Name:                     p.Name,
			Active:                   p.Active,
			SystemCost:               p.SystemCost,
			FinancingMethod:          p.Financing.Method,
			HorizonYears:             p.HorizonYears,
			BaseSelfConsumptionRatio: p.Site.BaseSelfConsumptionRatio,
			MaxSelfConsumptionRatio:  p.Site.MaxSelfConsumptionRatio,
			RoundTripEfficiency:      p.Battery.RoundTripEfficiency,
			TariffEscalationPercent:  p.Tariff.EscalationPercent,
			DegradationPercent:       p.DegradationPercent,
		})
	}

	return validation.ValidateProposals(proposals)
}
