// Package history records finished games as TOML documents.
package history

import "time"

// GameHistory is a complete record of one game.
type GameHistory struct {
	ID        string    `toml:"id"`
	Seed      int64     `toml:"seed,omitempty"`
	Started   time.Time `toml:"started"`
	MaxRounds int       `toml:"max_rounds"`
	Rounds    int       `toml:"rounds"`
	Outcome   string    `toml:"outcome"`
	Capped    bool      `toml:"capped"`
	Discarded int       `toml:"discarded"`
	Truncated bool      `toml:"truncated,omitempty"` // round log stopped early

	Left  PlayerHistory `toml:"left"`
	Right PlayerHistory `toml:"right"`
	Log   []RoundRecord `toml:"round,omitempty"`
}

// PlayerHistory is one player's starting hand and final card count.
type PlayerHistory struct {
	Start      []string `toml:"start"`
	Kings      int      `toml:"kings"`
	FinalCards int      `toml:"final_cards"`
}

// RoundRecord is a single resolved round.
type RoundRecord struct {
	Number    int      `toml:"n"`
	Winner    string   `toml:"winner"`
	Cards     []string `toml:"cards"`
	Ties      int      `toml:"ties,omitempty"`
	Discarded int      `toml:"discarded,omitempty"`
}
