package war

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/stacks"
)

// DefaultMaxRounds bounds games that would otherwise cycle forever.
const DefaultMaxRounds = 100_000

// Result says whether the game can continue after a round.
type Result int

const (
	Continue Result = iota
	GameOver
)

func (r Result) String() string {
	if r == GameOver {
		return "game over"
	}
	return "continue"
}

// Side identifies a player.
type Side int

const (
	None Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Round describes one resolved round.
type Round struct {
	Number    int // position in the game, 0 when played on its own
	Winner    Side
	Contested []deck.Card // every card drawn this round, left then right per pair
	Ties      int         // equal pairs before the round was decided
	Result    Result
	Discarded int // contested cards lost because the game ended mid-round
}

// Observer is notified after every round an engine plays.
type Observer interface {
	OnRound(Round)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Round)

// OnRound calls f(r).
func (f ObserverFunc) OnRound(r Round) { f(r) }

// Config configures an Engine. The zero value is usable.
type Config struct {
	MaxRounds int // 0 means DefaultMaxRounds
	Logger    *log.Logger
	Observer  Observer
}

// Summary is the outcome of a full game loop.
type Summary struct {
	Rounds    int
	Capped    bool // stopped by MaxRounds with both players still holding cards
	Discarded int
}

// Engine plays rounds between two players. An Engine holds no per-game state
// and may be shared, but a given pair of PlayerStacks must only be played by
// one goroutine at a time.
type Engine struct {
	maxRounds int
	logger    *log.Logger
	observer  Observer
}

// New creates an engine from config.
func New(config Config) *Engine {
	if config.MaxRounds <= 0 {
		config.MaxRounds = DefaultMaxRounds
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Engine{
		maxRounds: config.MaxRounds,
		logger:    config.Logger,
		observer:  config.Observer,
	}
}

// MaxRounds returns the engine's round cap.
func (e *Engine) MaxRounds() int {
	return e.maxRounds
}

// PlayRound plays a single round, moving the contested cards to the winner's
// won stack.
func (e *Engine) PlayRound(left, right *stacks.PlayerStacks) Round {
	return e.playRound(0, left, right)
}

func (e *Engine) playRound(number int, left, right *stacks.PlayerStacks) Round {
	round := Round{Number: number}
	round.Contested, round.Winner, round.Ties = resolve(left, right)

	switch round.Winner {
	case Left:
		left.Append(round.Contested)
	case Right:
		right.Append(round.Contested)
	default:
		round.Result = GameOver
		round.Discarded = len(round.Contested)
	}

	if e.logger.GetLevel() <= log.DebugLevel {
		e.logger.Debug("Round resolved",
			"round", round.Number,
			"winner", round.Winner,
			"cards", deck.FormatCards(round.Contested),
			"ties", round.Ties,
			"leftCards", left.TotalCards(),
			"rightCards", right.TotalCards())
		if round.Discarded > 0 {
			e.logger.Debug("Player exhausted during tie, contested cards discarded",
				"round", round.Number, "discarded", round.Discarded)
		}
	}

	if e.observer != nil {
		e.observer.OnRound(round)
	}
	return round
}

// resolve draws pairs until one card outranks the other or a player runs
// dry. A None winner means the game is over and the returned cards belong to
// nobody.
func resolve(left, right *stacks.PlayerStacks) (contested []deck.Card, winner Side, ties int) {
	for {
		if left.IsEmpty() || right.IsEmpty() {
			return contested, None, ties
		}

		l, _ := left.PopFront()
		r, _ := right.PopFront()
		contested = append(contested, l, r)

		switch c := deck.Compare(l, r); {
		case c > 0:
			return contested, Left, ties
		case c < 0:
			return contested, Right, ties
		}
		ties++
	}
}

// Run plays rounds until one ends the game or the round cap is reached.
// Both players are mutated in place to their final state.
func (e *Engine) Run(left, right *stacks.PlayerStacks) Summary {
	var summary Summary
	if left.IsEmpty() || right.IsEmpty() {
		return summary
	}

	for summary.Rounds < e.maxRounds {
		summary.Rounds++
		round := e.playRound(summary.Rounds, left, right)
		summary.Discarded += round.Discarded
		if round.Result == GameOver {
			e.logger.Debug("Game over", "rounds", summary.Rounds,
				"leftCards", left.TotalCards(), "rightCards", right.TotalCards())
			return summary
		}
	}

	summary.Capped = !left.IsEmpty() && !right.IsEmpty()
	if !summary.Capped {
		return summary
	}
	e.logger.Warn("Round cap reached, game is a draw",
		"rounds", summary.Rounds,
		"leftCards", left.TotalCards(),
		"rightCards", right.TotalCards())
	return summary
}

// PlayGame runs a full game and returns the number of rounds played.
func (e *Engine) PlayGame(left, right *stacks.PlayerStacks) int {
	return e.Run(left, right).Rounds
}

var defaultEngine = New(Config{})

// PlayRound plays one round with the default engine.
func PlayRound(left, right *stacks.PlayerStacks) Result {
	return defaultEngine.PlayRound(left, right).Result
}

// PlayGame plays a full game with the default engine and returns the number
// of rounds played.
func PlayGame(left, right *stacks.PlayerStacks) int {
	return defaultEngine.PlayGame(left, right)
}
