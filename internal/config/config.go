package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Engine  EngineConfig  `yaml:"engine" envconfig:"ENGINE"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/kd.log"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// EngineConfig contains cost-of-debt engine configuration.
type EngineConfig struct {
	// MaxConcurrency bounds the per-line fan-out; 0 means one worker
	// per CPU.
	MaxConcurrency int `yaml:"max_concurrency" envconfig:"MAX_CONCURRENCY" default:"0" validate:"min=0"`

	// ReferenceRatesFile optionally overrides the built-in index base
	// rates from a YAML file (canonical index id -> annual decimal).
	ReferenceRatesFile string `yaml:"reference_rates_file" envconfig:"REFERENCE_RATES_FILE"`
}

// Load loads configuration from a kd-config.yaml file (working
// directory or next to the executable, when present) and environment
// variables with the KD prefix. Environment variables win over file
// values.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("KD", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path, ok := findConfigFile(); ok {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration using struct validation tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// merge overlays env-derived values on top of file values. Env values
// that still carry the envconfig default do not override an explicit
// file setting.
func merge(file, env Config) Config {
	out := env
	if file.Logging.Level != "" && env.Logging.Level == "info" {
		out.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" && env.Logging.Format == "json" {
		out.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" && env.Logging.Output == "console" {
		out.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" && env.Logging.FilePath == "logs/kd.log" {
		out.Logging.FilePath = file.Logging.FilePath
	}
	if file.Paths.DataDir != "" && env.Paths.DataDir == "data" {
		out.Paths.DataDir = file.Paths.DataDir
	}
	if file.Paths.ReportsDir != "" && env.Paths.ReportsDir == "data/reports" {
		out.Paths.ReportsDir = file.Paths.ReportsDir
	}
	if file.Paths.LogsDir != "" && env.Paths.LogsDir == "logs" {
		out.Paths.LogsDir = file.Paths.LogsDir
	}
	if file.Engine.MaxConcurrency != 0 && env.Engine.MaxConcurrency == 0 {
		out.Engine.MaxConcurrency = file.Engine.MaxConcurrency
	}
	if file.Engine.ReferenceRatesFile != "" && env.Engine.ReferenceRatesFile == "" {
		out.Engine.ReferenceRatesFile = file.Engine.ReferenceRatesFile
	}
	return out
}

func findConfigFile() (string, bool) {
	candidates := []string{"kd-config.yaml", "kd-config.yml"}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, "kd-config.yaml"),
			filepath.Join(dir, "kd-config.yml"),
		)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
