package history

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/fileutil"
	"github.com/lox/warsim/internal/war"
)

// Encode writes the game history to w as TOML.
func Encode(w io.Writer, h *GameHistory) error {
	if h == nil {
		return errors.New("history: game history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(h)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(h *GameHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, h); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// Decode reads a TOML game history and validates it.
func Decode(r io.Reader) (*GameHistory, error) {
	var h GameHistory
	if _, err := toml.NewDecoder(r).Decode(&h); err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return &h, nil
}

// Save writes the history to path atomically.
func Save(path string, h *GameHistory) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, h)
	})
}

// Load reads a history file.
func Load(path string) (*GameHistory, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

var outcomes = map[string]bool{
	war.LeftWins.String():  true,
	war.RightWins.String(): true,
	war.Draw.String():      true,
}

// Validate checks that the history is self-consistent: every card parses,
// the round log is in order, and no cards were created or lost beyond the
// recorded discards.
func (h *GameHistory) Validate() error {
	if h.ID == "" {
		return errors.New("history: missing id")
	}
	if !outcomes[h.Outcome] {
		return fmt.Errorf("history: unknown outcome %q", h.Outcome)
	}

	left, err := parse(h.Left.Start)
	if err != nil {
		return fmt.Errorf("history: left start: %w", err)
	}
	right, err := parse(h.Right.Start)
	if err != nil {
		return fmt.Errorf("history: right start: %w", err)
	}

	start := len(left) + len(right)
	end := h.Left.FinalCards + h.Right.FinalCards + h.Discarded
	if start != end {
		return fmt.Errorf("history: %d cards at start but %d accounted for at end", start, end)
	}

	if len(h.Log) > h.Rounds {
		return fmt.Errorf("history: %d rounds logged but game lasted %d", len(h.Log), h.Rounds)
	}
	for i, round := range h.Log {
		if round.Number != i+1 {
			return fmt.Errorf("history: round %d out of order (want %d)", round.Number, i+1)
		}
		if _, err := parse(round.Cards); err != nil {
			return fmt.Errorf("history: round %d: %w", round.Number, err)
		}
	}
	return nil
}

func parse(notations []string) ([]deck.Card, error) {
	cards := make([]deck.Card, 0, len(notations))
	for _, n := range notations {
		c, err := deck.ParseCard(n)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
