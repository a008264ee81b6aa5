// Package config loads the pipeline configuration surface: the business-unit
// allow-list, eligibility values, canonical sub-type labels, the status
// dictionary domain, and the compliance flag definitions. Values come from a
// YAML config file, environment variables, and .env files via Viper, so no
// pipeline parameter is a hard-coded literal.
package config

import (
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/talentops/ledgerlens/pkg/constants"
	"github.com/talentops/ledgerlens/pkg/errors"
	"github.com/talentops/ledgerlens/pkg/flags"
	"github.com/talentops/ledgerlens/pkg/pipeline"
	"github.com/talentops/ledgerlens/pkg/profile"
)

// Config holds the pipeline configuration loaded from all sources.
type Config struct {
	// Entity eligibility
	BusinessUnits      []string
	WorkerType         string
	EngagementStatuses []string
	StandardAgreement  string

	// Canonical sub-type labels
	BankPurpose string
	AddressType string

	// Status translation
	StatusDomain string

	// Compliance flags: output flag name → category label
	DocFlags map[string]string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration in order of precedence: environment variables,
// .env files, the given config file (optional), then defaults.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("LEDGERLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "reading "+configFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".ledgerlens")
		_ = v.ReadInConfig() // Missing default config file is fine
	}

	cfg := &Config{
		BusinessUnits:      v.GetStringSlice("business_units"),
		WorkerType:         v.GetString("worker_type"),
		EngagementStatuses: v.GetStringSlice("engagement_statuses"),
		StandardAgreement:  v.GetString("standard_agreement"),
		BankPurpose:        v.GetString("bank_purpose"),
		AddressType:        v.GetString("address_type"),
		StatusDomain:       v.GetString("status_domain"),
		DocFlags:           v.GetStringMapString("doc_flags"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults matches the standard pipeline deployment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("business_units", []string{"FR01", "DE02"})
	v.SetDefault("worker_type", constants.DefaultWorkerType)
	v.SetDefault("engagement_statuses", []string{"Engaged", "Onboarding"})
	v.SetDefault("standard_agreement", constants.DefaultStandardAgreement)
	v.SetDefault("bank_purpose", constants.DefaultBankPurpose)
	v.SetDefault("address_type", constants.DefaultAddressType)
	v.SetDefault("status_domain", constants.DefaultStatusDomain)
	v.SetDefault("doc_flags", map[string]string{
		"has_incorporation_doc":     "Incorporation",
		"has_bank_verification_doc": "BankVerification",
	})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
}

func (c *Config) validate() error {
	if len(c.BusinessUnits) == 0 {
		return errors.NewConfigError("business_units", "allow-list must not be empty", nil)
	}
	if c.WorkerType == "" {
		return errors.NewConfigError("worker_type", "must not be empty", nil)
	}
	if len(c.EngagementStatuses) == 0 {
		return errors.NewConfigError("engagement_statuses", "must not be empty", nil)
	}
	if c.StatusDomain == "" {
		return errors.NewConfigError("status_domain", "must not be empty", nil)
	}
	return nil
}

// Eligibility builds the entity filter from configuration.
func (c *Config) Eligibility() profile.Eligibility {
	return profile.Eligibility{
		WorkerType:         c.WorkerType,
		EngagementStatuses: c.EngagementStatuses,
		BusinessUnits:      c.BusinessUnits,
		StandardAgreement:  c.StandardAgreement,
	}
}

// FlagSet builds the compliance flag set from configuration, ordered by flag
// name so the set is stable across runs regardless of map iteration.
func (c *Config) FlagSet() flags.Set {
	names := make([]string, 0, len(c.DocFlags))
	for name := range c.DocFlags {
		names = append(names, name)
	}
	sort.Strings(names)

	set := make(flags.Set, 0, len(names))
	for _, name := range names {
		set = append(set, flags.LabelFlag(name, c.DocFlags[name]))
	}
	return set
}

// PipelineOptions translates the configuration into pipeline options.
func (c *Config) PipelineOptions() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithBankPurpose(c.BankPurpose),
		pipeline.WithAddressType(c.AddressType),
		pipeline.WithStatusDomain(c.StatusDomain),
		pipeline.WithEligibility(c.Eligibility()),
		pipeline.WithFlags(c.FlagSet()),
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
