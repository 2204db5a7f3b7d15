package history

import (
	"time"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/stacks"
	"github.com/lox/warsim/internal/war"
)

// Header describes a game before it is played.
type Header struct {
	ID        string
	Seed      int64
	Started   time.Time
	MaxRounds int
	Left      []deck.Card
	Right     []deck.Card
}

// Recorder builds a GameHistory while a game is played. It implements
// war.Observer.
type Recorder struct {
	history GameHistory
	limit   int
}

// NewRecorder starts a history. At most limit rounds are logged; 0 logs all
// of them.
func NewRecorder(h Header, limit int) *Recorder {
	return &Recorder{
		limit: limit,
		history: GameHistory{
			ID:        h.ID,
			Seed:      h.Seed,
			Started:   h.Started.UTC().Truncate(time.Millisecond),
			MaxRounds: h.MaxRounds,
			Left:      PlayerHistory{Start: deck.Notations(h.Left), Kings: deck.Kings(h.Left)},
			Right:     PlayerHistory{Start: deck.Notations(h.Right), Kings: deck.Kings(h.Right)},
		},
	}
}

// OnRound appends the round to the log.
func (r *Recorder) OnRound(round war.Round) {
	if r.limit > 0 && len(r.history.Log) >= r.limit {
		r.history.Truncated = true
		return
	}
	r.history.Log = append(r.history.Log, RoundRecord{
		Number:    round.Number,
		Winner:    round.Winner.String(),
		Cards:     deck.Notations(round.Contested),
		Ties:      round.Ties,
		Discarded: round.Discarded,
	})
}

// Finish records the final state and returns the completed history.
func (r *Recorder) Finish(summary war.Summary, left, right *stacks.PlayerStacks) *GameHistory {
	h := r.history
	h.Rounds = summary.Rounds
	h.Capped = summary.Capped
	h.Discarded = summary.Discarded
	h.Outcome = war.Classify(left, right).String()
	h.Left.FinalCards = left.TotalCards()
	h.Right.FinalCards = right.TotalCards()
	return &h
}
