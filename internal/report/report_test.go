package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/simulator"
	"github.com/lox/warsim/internal/stacks"
	"github.com/lox/warsim/internal/statistics"
	"github.com/lox/warsim/internal/war"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newPlayer(t *testing.T, notation string) *stacks.PlayerStacks {
	t.Helper()
	cards, err := deck.ParseCards(notation)
	require.NoError(t, err)
	return stacks.New(cards, randutil.New(1))
}

func sampleSummary() *simulator.Summary {
	stats := &statistics.Statistics{}
	stats.Add(statistics.GameResult{Rounds: 120, Outcome: war.LeftWins, LeftKings: 3, RightKings: 1})
	stats.Add(statistics.GameResult{Rounds: 480, Outcome: war.RightWins, LeftKings: 1, RightKings: 3})
	stats.Add(statistics.GameResult{Rounds: 100_000, Outcome: war.Draw, Capped: true, LeftKings: 2, RightKings: 2})
	return &simulator.Summary{Stats: stats, Seed: 42, Elapsed: 1500 * time.Millisecond}
}

func TestGame(t *testing.T) {
	left := newPlayer(t, "Kc 10c 8h")
	right := newPlayer(t, "10s 10d 9d")
	summary := war.New(war.Config{}).Run(left, right)

	var buf bytes.Buffer
	Game(&buf, 99, summary, left, right)
	out := buf.String()

	assert.Contains(t, out, "WAR")
	assert.Contains(t, out, "left wins")
	assert.Contains(t, out, "Seed")
	assert.Contains(t, out, "99")
	assert.Contains(t, out, "0 cards")
	assert.NotContains(t, out, "round cap")
}

func TestGameCapped(t *testing.T) {
	left := newPlayer(t, "Kh 2h")
	right := newPlayer(t, "Qs 3s")
	summary := war.New(war.Config{MaxRounds: 1}).Run(left, right)

	var buf bytes.Buffer
	Game(&buf, 0, summary, left, right)
	out := buf.String()

	assert.Contains(t, out, "draw")
	assert.Contains(t, out, "round cap reached")
	assert.NotContains(t, out, "Seed")
}

func TestGameDiscarded(t *testing.T) {
	left := newPlayer(t, "Ac Kc")
	right := newPlayer(t, "Ah Kh")
	summary := war.New(war.Config{}).Run(left, right)

	var buf bytes.Buffer
	Game(&buf, 0, summary, left, right)
	assert.Contains(t, buf.String(), "4 cards lost in an unfinished tie")
}

func TestSimulation(t *testing.T) {
	var buf bytes.Buffer
	Simulation(&buf, sampleSummary())
	out := buf.String()

	for _, want := range []string{
		"WAR SIMULATION: 3 games (seed 42)",
		"Outcomes",
		"1 (33.3%)",
		"Rounds per game",
		"120 to 100000",
		"King decisiveness",
		"3 kings",
		"won 2 of 2 decided games (100.0%)",
		"games/sec",
	} {
		assert.Contains(t, out, want)
	}
}

func TestOutcomes(t *testing.T) {
	assert.Equal(t, "left 1 / right 1 / draw 1", Outcomes(sampleSummary().Stats))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 20)

	var wg sync.WaitGroup
	for i := 1; i <= 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Update(i, 200)
		}()
	}
	wg.Wait()
	p.Update(200, 200)
	p.Done()

	out := buf.String()
	assert.Contains(t, out, "100% 200/200")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.LessOrEqual(t, strings.Count(out, "\r"), 101, "redraws only when the percentage grows")
}

func TestProgressDoneWithoutUpdates(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 20)
	p.Update(1, 0)
	p.Done()
	assert.Empty(t, buf.String())
}

func TestSaveSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.toml")
	require.NoError(t, SaveSummary(path, sampleSummary()))

	var got SummaryFile
	_, err := toml.DecodeFile(path, &got)
	require.NoError(t, err)

	assert.Equal(t, NewSummaryFile(sampleSummary()), got)
	assert.Equal(t, int64(1500), got.ElapsedMS)
	assert.Len(t, got.Kings, 5)
	assert.Equal(t, 1, got.Capped)
	assert.InDelta(t, 1.0, got.KingDecisiveness, 1e-9)
}
