// Package config loads and validates engine configuration from YAML files
// with environment-variable overrides. It provides typed structs for the
// processing defaults, the compound splitter, the worker pool, logging, and
// metrics.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Processing ProcessingConfig `yaml:"processing"`
	Split      SplitConfig      `yaml:"split"`
	Workers    WorkersConfig    `yaml:"workers"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ProcessingConfig holds defaults for KWIC and glue operations.
type ProcessingConfig struct {
	ContextLeft  int    `yaml:"contextLeft"`
	ContextRight int    `yaml:"contextRight"`
	GlueString   string `yaml:"glueString"`
	Highlight    string `yaml:"highlight"`
	NGramJoin    string `yaml:"ngramJoin"`
}

// SplitConfig holds defaults for the compound-word splitter.
type SplitConfig struct {
	SplitChars []string `yaml:"splitChars"`
	MinPartLen int      `yaml:"minPartLen"`
	CaseChange bool     `yaml:"caseChange"`
}

// WorkersConfig controls the per-document fan-out of corpus operations.
type WorkersConfig struct {
	MaxConcurrent int `yaml:"maxConcurrent"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls whether Prometheus collectors are registered.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// SplitRunes returns the configured split characters as runes, dropping
// entries that are not exactly one rune long.
func (s SplitConfig) SplitRunes() []rune {
	runes := make([]rune, 0, len(s.SplitChars))
	for _, c := range s.SplitChars {
		r := []rune(c)
		if len(r) == 1 {
			runes = append(runes, r[0])
		}
	}
	return runes
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// defaultConfig returns a Config with the defaults used throughout the
// engine when no file and no environment overrides are present.
func defaultConfig() *Config {
	return &Config{
		Processing: ProcessingConfig{
			ContextLeft:  2,
			ContextRight: 2,
			GlueString:   " ",
			Highlight:    "*",
			NGramJoin:    " ",
		},
		Split: SplitConfig{
			SplitChars: []string{"-"},
			MinPartLen: 2,
			CaseChange: false,
		},
		Workers: WorkersConfig{
			MaxConcurrent: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads CK_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CK_CONTEXT_LEFT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Processing.ContextLeft = n
		}
	}
	if v := os.Getenv("CK_CONTEXT_RIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Processing.ContextRight = n
		}
	}
	if v := os.Getenv("CK_GLUE_STRING"); v != "" {
		cfg.Processing.GlueString = v
	}
	if v := os.Getenv("CK_HIGHLIGHT"); v != "" {
		cfg.Processing.Highlight = v
	}
	if v := os.Getenv("CK_SPLIT_CHARS"); v != "" {
		cfg.Split.SplitChars = strings.Split(v, ",")
	}
	if v := os.Getenv("CK_SPLIT_MIN_PART_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Split.MinPartLen = n
		}
	}
	if v := os.Getenv("CK_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers.MaxConcurrent = n
		}
	}
	if v := os.Getenv("CK_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CK_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("CK_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = n
		}
	}
}
