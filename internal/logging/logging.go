// Package logging sets up the CLI's structured logger, in the zap
// development/production split used by signadot-tony-format. The core
// translation packages never log; diagnostics belong to the command-line
// front end only (spec.md section 7's propagation policy keeps the core
// silent and total).
package logging

import "go.uber.org/zap"

// New returns a console-encoded zap.Logger. verbose selects Debug level
// (development config, human-friendly); otherwise Info level in production
// config (fewer, cheaper allocations for the common case).
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
