// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for simulacredit.
type Configuration struct {
	Simulations []LoanConfiguration
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
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

	// ScheduleRows truncates the printed amortization table to the first and
	// last N rows; zero prints the full table. Truncation is display-only.
	ScheduleRows int `yaml:"scheduleRows,omitempty"`
}

// GraceConfig describes an optional grace period at the start of a loan.
type GraceConfig struct {
	Kind   string `yaml:"kind" json:"kind"` // total, partial
	Months int    `yaml:"months" json:"months"`
}

// BonusConfig describes an optional government housing subsidy.
type BonusConfig struct {
	Type        string `yaml:"type" json:"type"` // BBP, BFH
	Sustainable bool   `yaml:"sustainable,omitempty" json:"sustainable,omitempty"`
	Modality    string `yaml:"modality,omitempty" json:"modality,omitempty"` // BFH: purchase, construction, improvement
}

// LoanConfiguration holds the parameters of one mortgage simulation.
type LoanConfiguration struct {
	Name                    string       `yaml:"name" json:"name"`
	PropertyPrice           float64      `yaml:"propertyPrice" json:"propertyPrice"`
	DownPaymentPercent      float64      `yaml:"downPaymentPercent" json:"downPaymentPercent"`
	TermYears               int          `yaml:"termYears" json:"termYears"`
	Currency                string       `yaml:"currency" json:"currency"` // PEN, USD
	RateType                string       `yaml:"rateType" json:"rateType"` // effective, nominal
	InterestRateAnnual      float64      `yaml:"interestRateAnnual" json:"interestRateAnnual"`
	CapitalizationFrequency string       `yaml:"capitalizationFrequency,omitempty" json:"capitalizationFrequency,omitempty"`
	Grace                   *GraceConfig `yaml:"grace,omitempty" json:"grace,omitempty"`
	Bonus                   *BonusConfig `yaml:"bonus,omitempty" json:"bonus,omitempty"`
	ExtraMonthlyCosts       float64      `yaml:"extraMonthlyCosts,omitempty" json:"extraMonthlyCosts,omitempty"`
	DiscountRateAnnual      float64      `yaml:"discountRateAnnual" json:"discountRateAnnual"`
	StartDate               string       `yaml:"startDate,omitempty" json:"startDate,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// TermMonths returns the pre-multiplied schedule length.
func (loan *LoanConfiguration) TermMonths() int {
	return loan.TermYears * 12
}
