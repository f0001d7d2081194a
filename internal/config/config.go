// Package config provides configuration loading and validation for the CLI.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/cv-analyzer/internal/extraction"
	"github.com/jonathan/cv-analyzer/internal/matching"
	"github.com/jonathan/cv-analyzer/internal/pipeline"
	"github.com/jonathan/cv-analyzer/internal/scoring"
)

// EnvPrefix prefixes every environment override, e.g. CV_ANALYZER_PIPELINE_WORKERS
const EnvPrefix = "CV_ANALYZER"

// PipelineConfig holds the orchestration settings
type PipelineConfig struct {
	MinWordCount int `mapstructure:"min_word_count" json:"min_word_count" validate:"gte=1"`
	// Workers bounds concurrent documents in a batch; 0 means one per CPU
	Workers int `mapstructure:"workers" json:"workers" validate:"gte=0"`
}

// ReferenceConfig locates the optional reference data files
type ReferenceConfig struct {
	DistributionPath string `mapstructure:"distribution_path" json:"distribution_path,omitempty"`
	InstitutionsPath string `mapstructure:"institutions_path" json:"institutions_path,omitempty"`
}

// LoggingConfig selects the log encoding and level
type LoggingConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// Config is the complete process configuration. It can be loaded from a YAML or JSON
// file; environment variables override file values.
type Config struct {
	Extraction  extraction.Config `mapstructure:"extraction" json:"extraction"`
	Scoring     scoring.Config    `mapstructure:"scoring" json:"scoring"`
	Matching    matching.Config   `mapstructure:"matching" json:"matching"`
	Pipeline    PipelineConfig    `mapstructure:"pipeline" json:"pipeline"`
	Reference   ReferenceConfig   `mapstructure:"reference" json:"reference"`
	DatabaseURL string            `mapstructure:"database_url" json:"database_url,omitempty"`
	Logging     LoggingConfig     `mapstructure:"logging" json:"logging"`
}

// envKeys are the settings that may be overridden from the environment
var envKeys = []string{
	"extraction.points_per_verb_year",
	"extraction.reference_date",
	"pipeline.min_word_count",
	"pipeline.workers",
	"reference.distribution_path",
	"reference.institutions_path",
	"logging.json",
	"logging.debug",
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Extraction: extraction.DefaultConfig(),
		Scoring:    scoring.DefaultConfig(),
		Matching:   matching.DefaultConfig(),
		Pipeline:   PipelineConfig{MinWordCount: pipeline.DefaultMinWordCount},
	}
}

// LoadConfig loads configuration from path on top of Default() and applies
// environment overrides. An empty path loads defaults and environment only.
// The result is not validated; call Validate.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, &ConfigurationError{Message: "binding environment variable for " + key, Cause: err}
		}
	}
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, &ConfigurationError{Message: "binding DATABASE_URL environment variable", Cause: err}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigurationError{Message: "failed to read config file " + path, Cause: err}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigurationError{Message: "failed to decode config", Cause: err}
	}
	return &cfg, nil
}

// Validate checks every section. Any failure is returned as *ConfigurationError.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c.Pipeline); err != nil {
		return &ConfigurationError{Message: "invalid pipeline settings", Cause: err}
	}
	if err := validate.Struct(c.Extraction); err != nil {
		return &ConfigurationError{Message: "invalid extraction settings", Cause: err}
	}
	if err := c.Scoring.Validate(); err != nil {
		return &ConfigurationError{Message: "invalid scoring settings", Cause: err}
	}
	if err := c.Matching.Validate(); err != nil {
		return &ConfigurationError{Message: "invalid matching settings", Cause: err}
	}
	return nil
}

// AnalyzerOptions maps the configuration onto pipeline options. Logger, clock and
// reference data are left for the caller to wire.
func (c *Config) AnalyzerOptions() pipeline.Options {
	return pipeline.Options{
		Extraction:   c.Extraction,
		Scoring:      c.Scoring,
		Matching:     c.Matching,
		MinWordCount: c.Pipeline.MinWordCount,
		Workers:      c.Pipeline.Workers,
	}
}
