// Package config loads table configuration from HCL files, the way
// the rest of this codebase's tooling is configured.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TableConfig is the complete configuration for one table: stakes,
// seating, and logging.
type TableConfig struct {
	Table   TableSettings  `hcl:"table,block"`
	Blinds  BlindSettings  `hcl:"blinds,block"`
	Logging LoggingOptions `hcl:"logging,block"`
}

// TableSettings controls seating and starting stacks.
type TableSettings struct {
	Seats       int `hcl:"seats"`
	StartStack  int `hcl:"start_stack,optional"`
	HandsToDeal int `hcl:"hands_to_deal,optional"`
}

// BlindSettings controls blind sizing and escalation.
type BlindSettings struct {
	BigBlind      int  `hcl:"big_blind,optional"`
	IncreaseEvery int  `hcl:"increase_every,optional"`
	IncreaseBy    int  `hcl:"increase_by,optional"`
	NeverIncrease bool `hcl:"never_increase,optional"`
}

// LoggingOptions controls the table's structured logger.
type LoggingOptions struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *TableConfig {
	return &TableConfig{
		Table: TableSettings{
			Seats:       6,
			StartStack:  200,
			HandsToDeal: 0,
		},
		Blinds: BlindSettings{
			BigBlind:      2,
			IncreaseEvery: 0,
			IncreaseBy:    0,
			NeverIncrease: true,
		},
		Logging: LoggingOptions{
			Level: "info",
			File:  "",
		},
	}
}

// Load reads and decodes an HCL table configuration file. Seats,
// start_stack, big_blind and the logging level fall back to Default()'s
// values when left unset; every other setting keeps its zero value, so
// an omitted never_increase reads as false. A missing file is not an
// error; it returns the default configuration.
func Load(path string) (*TableConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", path, diags.Error())
	}

	var cfg TableConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", path, diags.Error())
	}

	defaults := Default()
	if cfg.Table.Seats == 0 {
		cfg.Table.Seats = defaults.Table.Seats
	}
	if cfg.Table.StartStack == 0 {
		cfg.Table.StartStack = defaults.Table.StartStack
	}
	if cfg.Blinds.BigBlind == 0 {
		cfg.Blinds.BigBlind = defaults.Blinds.BigBlind
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}

	return &cfg, nil
}

// Validate checks the configuration is playable.
func (c *TableConfig) Validate() error {
	if c.Table.Seats < 2 || c.Table.Seats > 9 {
		return fmt.Errorf("config: seats must be between 2 and 9, got %d", c.Table.Seats)
	}
	if c.Table.StartStack <= 0 {
		return fmt.Errorf("config: start_stack must be positive")
	}
	if c.Blinds.BigBlind <= 0 {
		return fmt.Errorf("config: big_blind must be positive")
	}
	if !c.Blinds.NeverIncrease && c.Blinds.IncreaseEvery <= 0 {
		return fmt.Errorf("config: increase_every must be positive when blinds escalate")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("config: invalid logging level %q", c.Logging.Level)
	}
	return nil
}
