package config

import (
	"fmt"
	"strings"

	"tally/pkg/models"
)

// DefaultProgramName prefixes every error line
const DefaultProgramName = "tally"

// Loader handles configuration loading and validation
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig returns the default configuration. There is no config file.
func (l *Loader) LoadConfig() *models.Config {
	return l.getDefaultConfig()
}

// getDefaultConfig returns the default configuration
func (l *Loader) getDefaultConfig() *models.Config {
	return &models.Config{
		Metrics:         models.MetricSet{},
		SkipDirectories: false,
		Format:          models.FormatText,
		ProgramName:     DefaultProgramName,
		LogLevel:        "warn",
	}
}

// OverrideWithFlags overrides config values with command line flags
func (l *Loader) OverrideWithFlags(config *models.Config, flags *models.CLIOptions) error {
	config.Metrics = models.MetricSet{
		Lines:         flags.Lines,
		Words:         flags.Words,
		Chars:         flags.Chars,
		Bytes:         flags.Bytes,
		MaxLineLength: flags.MaxLineLength,
	}

	if flags.SkipDirectories {
		config.SkipDirectories = true
	}

	if flags.Format != "" {
		config.Format = models.Format(strings.ToLower(strings.TrimSpace(flags.Format)))
	}

	if flags.Verbose && flags.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	if flags.Verbose {
		config.LogLevel = "debug"
	} else if flags.Quiet {
		config.LogLevel = "error"
	}

	return nil
}

// ValidateConfig validates the configuration and resolves the metric set
func (l *Loader) ValidateConfig(config *models.Config) error {
	switch config.Format {
	case models.FormatText, models.FormatYAML:
	default:
		return fmt.Errorf("invalid format '%s'. Valid options: text, yaml", config.Format)
	}

	if config.ProgramName == "" {
		return fmt.Errorf("program_name must not be empty")
	}

	config.Metrics = config.Metrics.Resolve()
	return nil
}
