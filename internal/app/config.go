package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/fibbench/internal/config"
	"github.com/specialistvlad/fibbench/internal/cputime"
	"github.com/specialistvlad/fibbench/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SuitePaths []string          // hcl files or directories; empty runs the built-in suite
	AdHoc      *config.Benchmark // single benchmark from flags; overrides SuitePaths

	Clock      cputime.Kind
	Workers    int
	Color      report.ColorMode
	ReportPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.AdHoc != nil && len(cfg.SuitePaths) > 0 {
		return nil, errors.New("an ad-hoc benchmark cannot be combined with suite paths")
	}
	if cfg.AdHoc != nil {
		if err := cfg.AdHoc.Validate(); err != nil {
			return nil, err
		}
	}

	clock, err := cputime.ParseKind(string(cfg.Clock))
	if err != nil {
		return nil, err
	}
	cfg.Clock = clock

	color, err := report.ParseColorMode(string(cfg.Color))
	if err != nil {
		return nil, err
	}
	cfg.Color = color

	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}

	return &cfg, nil
}
