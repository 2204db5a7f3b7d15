package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardRankRange(t *testing.T) {
	for rank := 1; rank <= 13; rank++ {
		card, ok := NewCard(Spade, rank)
		require.True(t, ok, "rank %d should be valid", rank)
		assert.Equal(t, rank, card.Rank())
		assert.Equal(t, Spade, card.Suit())
	}

	for _, rank := range []int{-1, 0, 14, 100} {
		card, ok := NewCard(Heart, rank)
		assert.False(t, ok, "rank %d should be rejected", rank)
		assert.Equal(t, Card{}, card)
	}
}

func TestCompareIgnoresSuit(t *testing.T) {
	kh, _ := NewCard(Heart, 13)
	ks, _ := NewCard(Spade, 13)
	twoC, _ := NewCard(Club, 2)

	assert.Equal(t, 0, Compare(kh, ks))
	assert.Equal(t, 1, Compare(kh, twoC))
	assert.Equal(t, -1, Compare(twoC, ks))
}

func TestCardString(t *testing.T) {
	tests := []struct {
		suit     Suit
		rank     int
		str      string
		notation string
	}{
		{Heart, 1, "A♥", "Ah"},
		{Club, 10, "10♣", "10c"},
		{Diamond, 11, "J♦", "Jd"},
		{Spade, 13, "K♠", "Ks"},
	}
	for _, tt := range tests {
		card, ok := NewCard(tt.suit, tt.rank)
		require.True(t, ok)
		assert.Equal(t, tt.str, card.String())
		assert.Equal(t, tt.notation, card.Notation())
	}
}

func TestParseCards(t *testing.T) {
	mustCard := func(s Suit, r int) Card {
		c, ok := NewCard(s, r)
		require.True(t, ok)
		return c
	}

	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:     "concatenated",
			input:    "AhKdQcJs",
			expected: []Card{mustCard(Heart, 1), mustCard(Diamond, 13), mustCard(Club, 12), mustCard(Spade, 11)},
		},
		{
			name:     "separated with tens",
			input:    "10c, Td 2s",
			expected: []Card{mustCard(Club, 10), mustCard(Diamond, 10), mustCard(Spade, 2)},
		},
		{
			name:     "symbols and case",
			input:    "k♠ 1H",
			expected: []Card{mustCard(Spade, 13), mustCard(Heart, 1)},
		},
		{
			name:  "empty",
			input: "  ",
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "AhK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := ParseCards(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cards)
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, card := range Standard() {
		parsed, err := ParseCard(card.Notation())
		require.NoError(t, err)
		assert.Equal(t, card, parsed)
	}

	_, err := ParseCard("AhKh")
	assert.ErrorIs(t, err, ErrInvalidCard)
}
