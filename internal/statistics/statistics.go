package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/warsim/internal/war"
)

// MaxKings is the number of kings in a standard deck.
const MaxKings = 4

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	ID         string      // Game ID for log correlation
	Seed       int64       // RNG seed for this game (for replay)
	Rounds     int         // Rounds played
	Outcome    war.Outcome // Who won, or draw
	Capped     bool        // Stopped by the round cap
	LeftKings  int         // Kings in the left player's starting hand
	RightKings int         // Kings in the right player's starting hand
	LeftCards  int         // Left player's final card count
	RightCards int         // Right player's final card count
	Discarded  int         // Cards lost to a mid-tie exhaustion
}

// KingStats tracks outcomes for games where the left player started with a
// given number of kings.
type KingStats struct {
	Games     int
	LeftWins  int
	RightWins int
	Draws     int
}

// LeftWinRate returns the share of these games the left player won.
func (k KingStats) LeftWinRate() float64 {
	if k.Games == 0 {
		return 0
	}
	return float64(k.LeftWins) / float64(k.Games)
}

// Statistics aggregates results across many games
type Statistics struct {
	Games      int
	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance calculation
	Values     []float64 // Round counts for median/percentile calculation

	LeftWins  int
	RightWins int
	Draws     int
	Capped    int // Draws caused by the round cap
	Discarded int // Total cards discarded across all games

	MinRounds int
	MaxRounds int

	// Index is the left player's starting king count.
	KingResults [MaxKings + 1]KingStats

	// Games where one side started with more kings and the game was decided.
	KingMajorityGames int
	KingMajorityWins  int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	rounds := float64(result.Rounds)
	if s.Games == 0 || result.Rounds < s.MinRounds {
		s.MinRounds = result.Rounds
	}
	if result.Rounds > s.MaxRounds {
		s.MaxRounds = result.Rounds
	}
	s.Games++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)
	s.Discarded += result.Discarded

	switch result.Outcome {
	case war.LeftWins:
		s.LeftWins++
	case war.RightWins:
		s.RightWins++
	default:
		s.Draws++
		if result.Capped {
			s.Capped++
		}
	}

	if k := result.LeftKings; k >= 0 && k <= MaxKings {
		ks := &s.KingResults[k]
		ks.Games++
		switch result.Outcome {
		case war.LeftWins:
			ks.LeftWins++
		case war.RightWins:
			ks.RightWins++
		default:
			ks.Draws++
		}
	}

	if result.Outcome == war.Draw || result.LeftKings == result.RightKings {
		return
	}
	s.KingMajorityGames++
	majority := war.Left
	if result.RightKings > result.LeftKings {
		majority = war.Right
	}
	if result.Outcome.Winner() == majority {
		s.KingMajorityWins++
	}
}

// KingDecisiveness returns the share of decided games with an uneven king
// split that were won by the player holding more kings.
func (s *Statistics) KingDecisiveness() float64 {
	if s.KingMajorityGames == 0 {
		return 0
	}
	return float64(s.KingMajorityWins) / float64(s.KingMajorityGames)
}

// WinRate returns the share of all games won by side.
func (s *Statistics) WinRate(side war.Side) float64 {
	if s.Games == 0 {
		return 0
	}
	switch side {
	case war.Left:
		return float64(s.LeftWins) / float64(s.Games)
	case war.Right:
		return float64(s.RightWins) / float64(s.Games)
	default:
		return float64(s.Draws) / float64(s.Games)
	}
}

// Mean returns the arithmetic mean of rounds per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// Variance returns the sample variance of rounds per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of rounds per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median round count
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the round count at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks that the tallies are internally consistent
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	if total := s.LeftWins + s.RightWins + s.Draws; total != s.Games {
		return fmt.Errorf("outcomes total (%d) does not match games count (%d)", total, s.Games)
	}

	if s.Capped > s.Draws {
		return fmt.Errorf("capped games (%d) exceed draws (%d)", s.Capped, s.Draws)
	}

	bucketGames := 0
	for k, ks := range s.KingResults {
		if ks.LeftWins+ks.RightWins+ks.Draws != ks.Games {
			return fmt.Errorf("king bucket %d outcomes do not sum to %d games", k, ks.Games)
		}
		bucketGames += ks.Games
	}
	if bucketGames != s.Games {
		return fmt.Errorf("king buckets total (%d) does not match games count (%d)", bucketGames, s.Games)
	}

	if s.KingMajorityWins > s.KingMajorityGames {
		return fmt.Errorf("king majority wins (%d) exceed games (%d)", s.KingMajorityWins, s.KingMajorityGames)
	}

	return nil
}
