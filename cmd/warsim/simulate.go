package main

import (
	"fmt"

	"github.com/coder/quartz"
	"github.com/lox/warsim/internal/report"
	"github.com/lox/warsim/internal/simulator"
)

// SimulateCmd runs many games in parallel and reports aggregate statistics.
type SimulateCmd struct {
	Games      int    `short:"n" help:"Number of games to simulate (0 uses the config value)"`
	Workers    int    `short:"w" help:"Number of parallel workers (0 uses the config value)"`
	Seed       int64  `help:"Master RNG seed (0 uses the config seed, then a random one)"`
	MaxRounds  int    `help:"Round cap per game (0 uses the config value)"`
	SuitSize   int    `help:"Ranks per suit, 1-13 (0 uses the config value)"`
	Save       string `help:"Write a TOML summary to this file" type:"path"`
	NoProgress bool   `help:"Disable the progress bar"`

	clock quartz.Clock `kong:"-"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if c.Games != 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.MaxRounds != 0 {
		cfg.Simulation.MaxRounds = c.MaxRounds
	}
	if c.SuitSize != 0 {
		cfg.Simulation.SuitSize = c.SuitSize
	}
	if c.Save != "" {
		cfg.Output.SummaryFile = c.Save
	}
	if c.NoProgress {
		cfg.Output.Progress = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	ctx, stop := setupSignalHandler(logger)
	defer stop()

	var bar *report.Progress
	var onProgress func(done, total int)
	if cfg.Output.Progress {
		bar = report.NewProgress(g.errOut(), 40)
		onProgress = bar.Update
	}

	sim := simulator.New(simulator.Config{
		Games:     cfg.Simulation.Games,
		Workers:   cfg.Simulation.Workers,
		Seed:      cfg.Simulation.Seed,
		MaxRounds: cfg.Simulation.MaxRounds,
		SuitSize:  cfg.Simulation.SuitSize,
		Logger:    logger,
		Clock:     c.clock,
		Progress:  onProgress,
	})

	summary, err := sim.Run(ctx)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	report.Simulation(g.out(), summary)
	logger.Debug("Simulation outcomes", "tally", report.Outcomes(summary.Stats))

	if path := cfg.Output.SummaryFile; path != "" {
		if err := report.SaveSummary(path, summary); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		logger.Info("Saved simulation summary", "file", path)
	}
	return nil
}
