// Package config derives runtime settings from the program options.
package config

import (
	"runtime"

	"github.com/retroenv/r4300disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the verbosity requested by the options.
// Debug output takes precedence over quiet mode.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Workers returns the number of decode workers to use. A value of 0 selects
// one worker per CPU.
func Workers(opts options.Program) int {
	if opts.Workers <= 0 {
		return runtime.NumCPU()
	}
	return opts.Workers
}
