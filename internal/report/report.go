package report

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/warsim/internal/simulator"
	"github.com/lox/warsim/internal/stacks"
	"github.com/lox/warsim/internal/statistics"
	"github.com/lox/warsim/internal/war"
)

func line(w io.Writer, label, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(label), fmt.Sprintf(format, args...))
}

// Game prints the result of a single game and both players' final stacks.
func Game(w io.Writer, seed int64, summary war.Summary, left, right *stacks.PlayerStacks) {
	outcome := war.Classify(left, right)

	fmt.Fprintln(w, HeaderStyle.Render("WAR"))
	line(w, "Rounds", "%d", summary.Rounds)
	line(w, "Outcome", "%s", OutcomeStyle(outcome).Render(outcome.String()))
	if summary.Capped {
		line(w, "", "%s", MutedStyle.Render("round cap reached, game counted as a draw"))
	}
	if seed != 0 {
		line(w, "Seed", "%d", seed)
	}
	if summary.Discarded > 0 {
		line(w, "Discarded", "%d cards lost in an unfinished tie", summary.Discarded)
	}
	line(w, "Left", "%d cards  %s", left.TotalCards(), MutedStyle.Render(left.String()))
	line(w, "Right", "%d cards  %s", right.TotalCards(), MutedStyle.Render(right.String()))
}

// Simulation prints aggregate results of a simulation run.
func Simulation(w io.Writer, summary *simulator.Summary) {
	stats := summary.Stats

	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("WAR SIMULATION: %d games (seed %d)", stats.Games, summary.Seed)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, SectionStyle.Render("Outcomes"))
	line(w, "Left wins", "%s", WinStyle.Render(fmt.Sprintf("%d (%.1f%%)", stats.LeftWins, 100*stats.WinRate(war.Left))))
	line(w, "Right wins", "%s", LossStyle.Render(fmt.Sprintf("%d (%.1f%%)", stats.RightWins, 100*stats.WinRate(war.Right))))
	line(w, "Draws", "%s", DrawStyle.Render(fmt.Sprintf("%d (%.1f%%)", stats.Draws, 100*stats.WinRate(war.None))))
	line(w, "Round cap", "%d games", stats.Capped)
	line(w, "Discarded", "%d cards", stats.Discarded)

	fmt.Fprintln(w)
	fmt.Fprintln(w, SectionStyle.Render("Rounds per game"))
	low, high := stats.ConfidenceInterval95()
	line(w, "Mean", "%.1f", stats.Mean())
	line(w, "Median", "%.1f", stats.Median())
	line(w, "Std dev", "%.1f", stats.StdDev())
	line(w, "95% CI", "[%.1f, %.1f]", low, high)
	line(w, "Range", "%d to %d", stats.MinRounds, stats.MaxRounds)
	line(w, "Percentiles", "P5=%.0f P25=%.0f P75=%.0f P95=%.0f",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintln(w)
	fmt.Fprintln(w, SectionStyle.Render("King decisiveness"))
	for kings, ks := range stats.KingResults {
		if ks.Games == 0 {
			continue
		}
		line(w, fmt.Sprintf("%d kings", kings), "%d games, left won %.1f%%", ks.Games, 100*ks.LeftWinRate())
	}
	if stats.KingMajorityGames > 0 {
		line(w, "Majority", "won %d of %d decided games (%.1f%%)",
			stats.KingMajorityWins, stats.KingMajorityGames, 100*stats.KingDecisiveness())
	} else {
		line(w, "Majority", "%s", MutedStyle.Render("no decided games with an uneven king split"))
	}

	if summary.Elapsed > 0 {
		fmt.Fprintln(w)
		line(w, "Elapsed", "%s (%.0f games/sec)", summary.Elapsed.Round(time.Millisecond), summary.GamesPerSecond())
	}
}

// Outcomes returns a one-line tally, used in log output.
func Outcomes(stats *statistics.Statistics) string {
	return fmt.Sprintf("left %d / right %d / draw %d", stats.LeftWins, stats.RightWins, stats.Draws)
}
