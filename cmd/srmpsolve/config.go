package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/srmp/srmp"
)

// configFile mirrors srmp.Options for YAML unmarshalling, the way
// config/config.go's File/Config pair mirrors the ALM operator's config.
// Durations are strings in the file (e.g. "30s") and parsed explicitly,
// since encoding/yaml does not know time.Duration's textual form.
type configFile struct {
	SRMP struct {
		MaxIterations      uint32  `yaml:"maxIterations"`
		TimeBudget         string  `yaml:"timeBudget"`
		LBEpsilon          float64 `yaml:"lbEpsilon"`
		ProgressWindow     uint32  `yaml:"progressWindow"`
		ExtractPrimalEvery uint32  `yaml:"extractPrimalEvery"`
		TRWWeighting       float64 `yaml:"trwWeighting"`
	} `yaml:"srmp"`
}

// loadOptions reads path (if non-empty) as a YAML config file and applies
// it over srmp.DefaultOptions. A zero-value field in the file is treated
// as "not set" and leaves the default in place, except TimeBudget, whose
// absence already means "unlimited" under the default.
func loadOptions(path string) (srmp.Options, error) {
	opts := srmp.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return opts, err
	}

	if cfg.SRMP.MaxIterations != 0 {
		opts.MaxIterations = cfg.SRMP.MaxIterations
	}
	if cfg.SRMP.TimeBudget != "" {
		d, err := time.ParseDuration(cfg.SRMP.TimeBudget)
		if err != nil {
			return opts, err
		}
		opts.TimeBudget = d
	}
	if cfg.SRMP.LBEpsilon != 0 {
		opts.LBEpsilon = cfg.SRMP.LBEpsilon
	}
	if cfg.SRMP.ProgressWindow != 0 {
		opts.ProgressWindow = cfg.SRMP.ProgressWindow
	}
	if cfg.SRMP.ExtractPrimalEvery != 0 {
		opts.ExtractPrimalEvery = cfg.SRMP.ExtractPrimalEvery
	}
	if cfg.SRMP.TRWWeighting != 0 {
		opts.TRWWeighting = cfg.SRMP.TRWWeighting
	}

	return opts, nil
}
