package cli

import (
	"github.com/cybertec-postgresql/coolex/internal/errors"
	"github.com/cybertec-postgresql/coolex/internal/report"
)

// Config holds runtime configuration combining flags and defaults
type Config struct {
	Format      string // Token-stream output format (plain, json, html)
	OutputPath  string // Single-input output override; "-" for stdout, "" for <input>-lex
	Parallelism int    // Max concurrent files (1 = sequential); passes themselves never parallelize
	CheckOnly   bool   // Lex and report errors without writing streams
	Verbose     bool   // Enable debug logging
}

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	Format:      string(report.FormatPlain),
	OutputPath:  "",
	Parallelism: 1,
	CheckOnly:   false,
	Verbose:     false,
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, format, output string, parallel int, verbose bool) {
	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.OutputPath = output
	}
	if parallel != 0 {
		c.Parallelism = parallel
	}
	c.Verbose = verbose
}

// Validate checks the configuration for contradictions; violations are
// usage errors and carry the corresponding exit code.
func (c *Config) Validate() error {
	if !report.ValidFormat(c.Format) {
		return errors.NewUsage("unsupported format: %s (supported: %v)",
			c.Format, report.SupportedFormats())
	}
	if c.Parallelism < 1 {
		return errors.NewUsage("parallelism must be at least 1, got %d", c.Parallelism)
	}
	return nil
}
