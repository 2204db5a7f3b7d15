// Package config loads simulation settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/war"
)

// Config represents the complete warsim configuration
type Config struct {
	Simulation SimulationSettings
	Logging    LoggingSettings
	Output     OutputSettings
}

// SimulationSettings controls how games are dealt and run
type SimulationSettings struct {
	Games     int   `hcl:"games,optional"`
	Workers   int   `hcl:"workers,optional"`
	Seed      int64 `hcl:"seed,optional"`
	MaxRounds int   `hcl:"max_rounds,optional"`
	SuitSize  int   `hcl:"suit_size,optional"`
}

// LoggingSettings controls log output
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// OutputSettings controls reports and exported files
type OutputSettings struct {
	Color       bool
	Progress    bool
	SummaryFile string
	HistoryFile string
	HistoryMax  int // rounds kept in an exported history, 0 keeps all
}

// file mirrors Config with optional blocks so any block may be omitted.
type file struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Logging    *LoggingSettings    `hcl:"logging,block"`
	Output     *rawOutput          `hcl:"output,block"`
}

// rawOutput keeps booleans as pointers so an explicit false is not mistaken
// for an unset value.
type rawOutput struct {
	Color       *bool  `hcl:"color,optional"`
	Progress    *bool  `hcl:"progress,optional"`
	SummaryFile string `hcl:"summary_file,optional"`
	HistoryFile string `hcl:"history_file,optional"`
	HistoryMax  int    `hcl:"history_max_rounds,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Games:     1000,
			Workers:   runtime.NumCPU(),
			MaxRounds: war.DefaultMaxRounds,
			SuitSize:  deck.SuitSize,
		},
		Logging: LoggingSettings{
			Level: "warn",
		},
		Output: OutputSettings{
			Color:    true,
			Progress: true,
		},
	}
}

// Load loads configuration from an HCL file. An empty filename or a missing
// file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if s := raw.Simulation; s != nil {
		if s.Games != 0 {
			config.Simulation.Games = s.Games
		}
		if s.Workers != 0 {
			config.Simulation.Workers = s.Workers
		}
		if s.MaxRounds != 0 {
			config.Simulation.MaxRounds = s.MaxRounds
		}
		if s.SuitSize != 0 {
			config.Simulation.SuitSize = s.SuitSize
		}
		config.Simulation.Seed = s.Seed
	}
	if l := raw.Logging; l != nil && l.Level != "" {
		config.Logging.Level = strings.ToLower(l.Level)
	}
	if o := raw.Output; o != nil {
		if o.Color != nil {
			config.Output.Color = *o.Color
		}
		if o.Progress != nil {
			config.Output.Progress = *o.Progress
		}
		config.Output.SummaryFile = o.SummaryFile
		config.Output.HistoryFile = o.HistoryFile
		config.Output.HistoryMax = o.HistoryMax
	}

	return config, nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation: games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("simulation: workers must be positive, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxRounds < 1 {
		return fmt.Errorf("simulation: max_rounds must be positive, got %d", c.Simulation.MaxRounds)
	}
	if c.Simulation.SuitSize < 1 || c.Simulation.SuitSize > deck.SuitSize {
		return fmt.Errorf("simulation: suit_size must be between 1 and %d, got %d", deck.SuitSize, c.Simulation.SuitSize)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging: invalid level %q", c.Logging.Level)
	}
	if c.Output.HistoryMax < 0 {
		return fmt.Errorf("output: history_max_rounds must not be negative, got %d", c.Output.HistoryMax)
	}
	return nil
}
