package report

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/lox/warsim/internal/fileutil"
	"github.com/lox/warsim/internal/simulator"
)

// SummaryFile is the exported form of a simulation run.
type SummaryFile struct {
	Games     int     `toml:"games"`
	Seed      int64   `toml:"seed"`
	ElapsedMS int64   `toml:"elapsed_ms"`
	LeftWins  int     `toml:"left_wins"`
	RightWins int     `toml:"right_wins"`
	Draws     int     `toml:"draws"`
	Capped    int     `toml:"capped"`
	Discarded int     `toml:"discarded"`
	Rounds    Rounds  `toml:"rounds"`
	Kings     []Kings `toml:"kings"`

	KingDecisiveness float64 `toml:"king_decisiveness"`
}

// Rounds summarises rounds per game.
type Rounds struct {
	Mean   float64 `toml:"mean"`
	Median float64 `toml:"median"`
	StdDev float64 `toml:"std_dev"`
	Min    int     `toml:"min"`
	Max    int     `toml:"max"`
	P95    float64 `toml:"p95"`
}

// Kings is one king-count bucket.
type Kings struct {
	Kings     int `toml:"kings"`
	Games     int `toml:"games"`
	LeftWins  int `toml:"left_wins"`
	RightWins int `toml:"right_wins"`
	Draws     int `toml:"draws"`
}

// NewSummaryFile flattens a simulation summary for export.
func NewSummaryFile(summary *simulator.Summary) SummaryFile {
	stats := summary.Stats
	out := SummaryFile{
		Games:     stats.Games,
		Seed:      summary.Seed,
		ElapsedMS: summary.Elapsed.Milliseconds(),
		LeftWins:  stats.LeftWins,
		RightWins: stats.RightWins,
		Draws:     stats.Draws,
		Capped:    stats.Capped,
		Discarded: stats.Discarded,
		Rounds: Rounds{
			Mean:   stats.Mean(),
			Median: stats.Median(),
			StdDev: stats.StdDev(),
			Min:    stats.MinRounds,
			Max:    stats.MaxRounds,
			P95:    stats.Percentile(0.95),
		},
		KingDecisiveness: stats.KingDecisiveness(),
	}
	for k, ks := range stats.KingResults {
		out.Kings = append(out.Kings, Kings{
			Kings:     k,
			Games:     ks.Games,
			LeftWins:  ks.LeftWins,
			RightWins: ks.RightWins,
			Draws:     ks.Draws,
		})
	}
	return out
}

// SaveSummary writes the summary to path as TOML, atomically.
func SaveSummary(path string, summary *simulator.Summary) error {
	doc := NewSummaryFile(summary)
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(doc)
	})
}
