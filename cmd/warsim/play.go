package main

import (
	"fmt"

	"github.com/coder/quartz"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/gameid"
	"github.com/lox/warsim/internal/history"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/report"
	"github.com/lox/warsim/internal/stacks"
	"github.com/lox/warsim/internal/war"
)

// PlayCmd plays a single game and prints the result.
type PlayCmd struct {
	Seed       int64  `help:"RNG seed for the deal and reshuffles (0 uses the config seed, then a random one)"`
	SuitSize   int    `help:"Ranks per suit, 1-13 (0 uses the config value)"`
	MaxRounds  int    `help:"Round cap before the game is declared a draw (0 uses the config value)"`
	Left       string `help:"Left player's starting cards, top first (e.g. 'KH 10C 2S')"`
	Right      string `help:"Right player's starting cards, top first"`
	History    string `help:"Write the game history to this TOML file" type:"path"`
	HistoryMax int    `help:"Maximum rounds kept in the history (0 keeps all)"`

	clock quartz.Clock `kong:"-"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if c.SuitSize != 0 {
		cfg.Simulation.SuitSize = c.SuitSize
	}
	if c.MaxRounds != 0 {
		cfg.Simulation.MaxRounds = c.MaxRounds
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.History != "" {
		cfg.Output.HistoryFile = c.History
	}
	if c.HistoryMax != 0 {
		cfg.Output.HistoryMax = c.HistoryMax
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}

	seed := randutil.Resolve(cfg.Simulation.Seed)
	rng := randutil.New(seed)

	l, r, err := c.hands(cfg.Simulation.SuitSize, rng)
	if err != nil {
		return err
	}
	left, right := stacks.New(l, rng), stacks.New(r, rng)

	var (
		observer war.Observer
		recorder *history.Recorder
	)
	if cfg.Output.HistoryFile != "" {
		recorder = history.NewRecorder(history.Header{
			ID:        gameid.NewGenerator(nil, c.clock).Generate(),
			Seed:      seed,
			Started:   c.clock.Now(),
			MaxRounds: cfg.Simulation.MaxRounds,
			Left:      l,
			Right:     r,
		}, cfg.Output.HistoryMax)
		observer = recorder
	}

	engine := war.New(war.Config{
		MaxRounds: cfg.Simulation.MaxRounds,
		Logger:    logger,
		Observer:  observer,
	})

	logger.Info("Starting game", "seed", seed, "left", len(l), "right", len(r))
	summary := engine.Run(left, right)
	report.Game(g.out(), seed, summary, left, right)

	if recorder != nil {
		h := recorder.Finish(summary, left, right)
		if err := history.Save(cfg.Output.HistoryFile, h); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		logger.Info("Saved game history", "file", cfg.Output.HistoryFile, "id", h.ID)
	}
	return nil
}

// hands returns the starting stacks: the explicit hands if given, otherwise
// a shuffled deck split in two.
func (c *PlayCmd) hands(suitSize int, shuffler deck.Shuffler) ([]deck.Card, []deck.Card, error) {
	if c.Left == "" && c.Right == "" {
		return deck.Deal(suitSize, shuffler)
	}
	if c.Left == "" || c.Right == "" {
		return nil, nil, fmt.Errorf("--left and --right must be given together")
	}

	left, err := deck.ParseCards(c.Left)
	if err != nil {
		return nil, nil, fmt.Errorf("left hand: %w", err)
	}
	right, err := deck.ParseCards(c.Right)
	if err != nil {
		return nil, nil, fmt.Errorf("right hand: %w", err)
	}
	if len(left) != len(right) {
		return nil, nil, fmt.Errorf("hands must be the same size: left has %d cards, right has %d", len(left), len(right))
	}
	return left, right, nil
}
