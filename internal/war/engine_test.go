package war

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
	"github.com/lox/warsim/internal/stacks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(t *testing.T, notation string) *stacks.PlayerStacks {
	t.Helper()
	cards, err := deck.ParseCards(notation)
	require.NoError(t, err)
	return stacks.New(cards, randutil.New(1))
}

func TestFirstStackWinsRound(t *testing.T) {
	left := player(t, "Kc")
	right := player(t, "Ac")

	result := PlayRound(left, right)

	assert.Equal(t, Continue, result)
	assert.Len(t, left.WonStack(), 2)
	assert.Len(t, right.WonStack(), 0)
}

func TestSecondStackWinsRound(t *testing.T) {
	left := player(t, "Ac")
	right := player(t, "2c")

	result := PlayRound(left, right)

	assert.Equal(t, Continue, result)
	assert.Len(t, left.WonStack(), 0)
	assert.Len(t, right.WonStack(), 2)
	assert.True(t, left.IsEmpty())
}

func TestTieBrokenByNextCard(t *testing.T) {
	left := player(t, "Ac Kc 10c")
	right := player(t, "Ac Qc Jc Qc")

	round := New(Config{}).PlayRound(left, right)

	assert.Equal(t, Continue, round.Result)
	assert.Equal(t, Left, round.Winner)
	assert.Equal(t, 1, round.Ties)
	assert.Equal(t, 5, left.TotalCards())
	assert.Equal(t, 2, right.TotalCards())

	won, err := deck.ParseCards("Ac Ac Kc Qc")
	require.NoError(t, err)
	assert.Equal(t, won, []deck.Card(left.WonStack()), "contested cards keep draw order, left card first")
	assert.Equal(t, won, round.Contested)
}

func TestCompleteTieResultsInGameOverWithEmptyStacks(t *testing.T) {
	left := player(t, "Ac Kc 10c")
	right := player(t, "Ac Kc 10c")

	round := New(Config{}).PlayRound(left, right)

	assert.Equal(t, GameOver, round.Result)
	assert.Equal(t, None, round.Winner)
	assert.Equal(t, 3, round.Ties)
	assert.Equal(t, 6, round.Discarded)
	assert.Zero(t, left.TotalCards())
	assert.Zero(t, right.TotalCards())
}

func TestExhaustionMidTieDiscardsEvenWhenOpponentHasCards(t *testing.T) {
	left := player(t, "5h")
	right := player(t, "5s 9s Kd")

	round := New(Config{}).PlayRound(left, right)

	assert.Equal(t, GameOver, round.Result)
	assert.Equal(t, 2, round.Discarded)
	assert.True(t, left.IsEmpty())
	assert.Equal(t, 2, right.TotalCards(), "the tied cards are not returned")
	assert.Empty(t, right.WonStack())
	assert.Equal(t, RightWins, Classify(left, right))
}

func TestRoundWithEmptyPlayerIsGameOver(t *testing.T) {
	left := player(t, "")
	right := player(t, "Kh")

	round := New(Config{}).PlayRound(left, right)

	assert.Equal(t, GameOver, round.Result)
	assert.Empty(t, round.Contested)
	assert.Zero(t, round.Discarded)
	assert.Equal(t, 1, right.TotalCards())
}

func TestLeftHasAWinningGame(t *testing.T) {
	left := player(t, "Kc 10c 8h")
	right := player(t, "10s 10d 9d")

	rounds := PlayGame(left, right)

	assert.False(t, left.IsEmpty())
	assert.True(t, right.IsEmpty())
	assert.Greater(t, rounds, 2)
	assert.Equal(t, LeftWins, Classify(left, right))
}

func TestPlayGameWithEmptyPlayerPlaysNoRounds(t *testing.T) {
	left := player(t, "")
	right := player(t, "Kh")

	assert.Zero(t, PlayGame(left, right))
	assert.Zero(t, PlayGame(right, left))
}

func TestRoundCapIsADraw(t *testing.T) {
	left := player(t, "Kh 2h")
	right := player(t, "Qs 3s")

	summary := New(Config{MaxRounds: 1}).Run(left, right)

	assert.Equal(t, 1, summary.Rounds)
	assert.True(t, summary.Capped)
	assert.Equal(t, Draw, Classify(left, right))
	assert.Equal(t, 3, left.TotalCards())
	assert.Equal(t, 1, right.TotalCards())
}

func TestRoundCapNotReportedWhenLastRoundEmptiesPlayer(t *testing.T) {
	left := player(t, "Kh")
	right := player(t, "Qs")

	summary := New(Config{MaxRounds: 1}).Run(left, right)

	assert.Equal(t, 1, summary.Rounds)
	assert.False(t, summary.Capped)
	assert.Equal(t, LeftWins, Classify(left, right))
}

func TestCardConservation(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := randutil.New(seed)
		l, r, err := deck.Deal(deck.SuitSize, rng)
		require.NoError(t, err)
		left, right := stacks.New(l, rng), stacks.New(r, rng)
		engine := New(Config{})

		discarded := 0
		for i := 0; i < engine.MaxRounds(); i++ {
			round := engine.PlayRound(left, right)
			discarded += round.Discarded
			require.Equal(t, 52, left.TotalCards()+right.TotalCards()+discarded,
				"seed %d round %d", seed, i+1)
			if round.Result == GameOver {
				break
			}
		}
	}
}

func TestFullGameTermination(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := randutil.New(seed)
		l, r, err := deck.Deal(deck.SuitSize, rng)
		require.NoError(t, err)
		left, right := stacks.New(l, rng), stacks.New(r, rng)

		summary := New(Config{}).Run(left, right)

		require.LessOrEqual(t, summary.Rounds, DefaultMaxRounds)
		require.Greater(t, summary.Rounds, 0)
		total := left.TotalCards() + right.TotalCards()
		assert.Equal(t, 52, total+summary.Discarded, "seed %d", seed)

		switch Classify(left, right) {
		case LeftWins:
			assert.Zero(t, right.TotalCards())
			assert.False(t, summary.Capped)
		case RightWins:
			assert.Zero(t, left.TotalCards())
			assert.False(t, summary.Capped)
		case Draw:
			if summary.Capped {
				assert.Equal(t, DefaultMaxRounds, summary.Rounds)
				assert.NotZero(t, left.TotalCards())
				assert.NotZero(t, right.TotalCards())
			} else {
				assert.Zero(t, total, "uncapped draw means both were exhausted together")
			}
		}
	}
}

func TestObserverSeesEveryRound(t *testing.T) {
	var seen []Round
	engine := New(Config{Observer: ObserverFunc(func(r Round) { seen = append(seen, r) })})

	left := player(t, "Kc 10c 8h")
	right := player(t, "10s 10d 9d")
	rounds := engine.PlayGame(left, right)

	require.Len(t, seen, rounds)
	for i, r := range seen {
		assert.Equal(t, i+1, r.Number)
	}
	assert.Equal(t, GameOver, seen[len(seen)-1].Result)
	assert.Equal(t, Left, seen[0].Winner)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	left := player(t, "Ac Kc 10c")
	right := player(t, "Ac Kc 10c")
	New(Config{Logger: logger}).Run(left, right)

	out := buf.String()
	assert.Contains(t, out, "Round resolved")
	assert.Contains(t, out, "contested cards discarded")
	assert.Contains(t, out, "Game over")
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "left wins", LeftWins.String())
	assert.Equal(t, Right, RightWins.Winner())
	assert.Equal(t, None, Draw.Winner())
	assert.Equal(t, "game over", GameOver.String())
}
