package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/gameid"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/stacks"
	"github.com/lox/warsim/internal/statistics"
	"github.com/lox/warsim/internal/war"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Games     int
	Workers   int
	Seed      int64
	MaxRounds int
	SuitSize  int
	Logger    *log.Logger
	Clock     quartz.Clock

	// Progress, if set, is called after each finished game with the number
	// of games completed so far. It may be called from several goroutines.
	Progress func(done, total int)
}

// Summary is the result of a simulation run
type Summary struct {
	Stats   *statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// GamesPerSecond returns the simulation throughput.
func (s *Summary) GamesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Stats.Games) / s.Elapsed.Seconds()
}

// Simulator runs many independent games and aggregates their outcomes
type Simulator struct {
	config Config
	engine *war.Engine
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.SuitSize == 0 {
		config.SuitSize = deck.SuitSize
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	config.Seed = randutil.Resolve(config.Seed)

	return &Simulator{
		config: config,
		engine: war.New(war.Config{MaxRounds: config.MaxRounds, Logger: config.Logger}),
	}
}

// Run executes the simulation and returns results. Games are aggregated in
// game order, so the statistics depend only on the seed and not on the
// number of workers.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	if s.config.Games < 1 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}
	if _, err := deck.New(s.config.SuitSize); err != nil {
		return nil, err
	}

	start := s.config.Clock.Now("simulator", "start")
	s.config.Logger.Info("Starting simulation",
		"games", s.config.Games,
		"workers", s.config.Workers,
		"seed", s.config.Seed,
		"maxRounds", s.engine.MaxRounds())

	results := make([]statistics.GameResult, s.config.Games)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := 0; i < s.config.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result

			n := int(done.Add(1))
			if s.config.Progress != nil {
				s.config.Progress(n, s.config.Games)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	summary := &Summary{
		Stats:   stats,
		Seed:    s.config.Seed,
		Elapsed: s.config.Clock.Since(start, "simulator", "end"),
	}
	s.config.Logger.Info("Simulation complete",
		"games", stats.Games,
		"elapsed", summary.Elapsed,
		"leftWins", stats.LeftWins,
		"rightWins", stats.RightWins,
		"draws", stats.Draws)
	return summary, nil
}

func (s *Simulator) playGame(i int) (statistics.GameResult, error) {
	seed := randutil.Derive(s.config.Seed, i)
	result, err := Play(s.engine, seed, s.config.SuitSize, s.config.Clock)
	if err != nil {
		return result, err
	}
	if result.Capped {
		s.config.Logger.Warn("Game hit round cap",
			"game", result.ID, "seed", seed, "rounds", result.Rounds)
	}
	return result, nil
}

// Play deals and plays a single game from seed. The same seed drives the
// initial shuffle and both players' won-stack reshuffles, so a game can be
// replayed exactly.
func Play(engine *war.Engine, seed int64, suitSize int, clock quartz.Clock) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	l, r, err := deck.Deal(suitSize, rng)
	if err != nil {
		return statistics.GameResult{}, err
	}
	left, right := stacks.New(l, rng), stacks.New(r, rng)

	summary := engine.Run(left, right)
	return statistics.GameResult{
		ID:         gameid.NewGenerator(rng, clock).Generate(),
		Seed:       seed,
		Rounds:     summary.Rounds,
		Outcome:    war.Classify(left, right),
		Capped:     summary.Capped,
		LeftKings:  deck.Kings(l),
		RightKings: deck.Kings(r),
		LeftCards:  left.TotalCards(),
		RightCards: right.TotalCards(),
		Discarded:  summary.Discarded,
	}, nil
}
