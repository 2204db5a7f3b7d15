package deck

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// SuitSize is the number of ranks in a standard suit.
const SuitSize = 13

// ErrInvalidCard is returned when card notation cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. Suits carry no ordering during play.
type Suit int

const (
	Heart Suit = iota
	Club
	Diamond
	Spade
)

// Suits lists every suit in deck-construction order.
var Suits = [...]Suit{Heart, Club, Diamond, Spade}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single ASCII letter used in card notation.
func (s Suit) Letter() string {
	switch s {
	case Heart:
		return "h"
	case Club:
		return "c"
	case Diamond:
		return "d"
	case Spade:
		return "s"
	default:
		return "?"
	}
}

// Card is an immutable playing card. Only the rank matters for play; the suit
// is informational.
type Card struct {
	suit Suit
	rank int
}

// NewCard creates a card. It returns false when rank is outside [1, 13].
func NewCard(suit Suit, rank int) (Card, bool) {
	if rank < 1 || rank > SuitSize {
		return Card{}, false
	}
	return Card{suit: suit, rank: rank}, true
}

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Rank returns the card's rank, 1 (lowest) to 13 (highest).
func (c Card) Rank() int { return c.rank }

// IsKing reports whether the card is the highest rank.
func (c Card) IsKing() bool { return c.rank == SuitSize }

// String returns the string representation of a card (e.g., "K♠")
func (c Card) String() string {
	return rankString(c.rank) + c.suit.String()
}

// Notation returns the ASCII form accepted by ParseCard (e.g., "Ks").
func (c Card) Notation() string {
	return rankString(c.rank) + c.suit.Letter()
}

// Compare orders cards by rank alone.
func Compare(a, b Card) int {
	return cmp.Compare(a.rank, b.rank)
}

func rankString(rank int) string {
	switch rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return fmt.Sprint(rank)
	}
}

// ParseCard parses a single card such as "Ah", "10c", "Td" or "K♠".
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("%w: %q is not a single card", ErrInvalidCard, s)
	}
	return cards[0], nil
}

// ParseCards parses a run of cards. Cards may be concatenated ("AhKd") or
// separated by spaces or commas ("Ah, Kd").
func ParseCards(s string) ([]Card, error) {
	runes := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, s))

	var cards []Card
	for i := 0; i < len(runes); {
		rank, width, ok := parseRank(runes[i:])
		if !ok {
			return nil, fmt.Errorf("%w: bad rank at %q", ErrInvalidCard, string(runes[i:]))
		}
		i += width
		if i >= len(runes) {
			return nil, fmt.Errorf("%w: missing suit in %q", ErrInvalidCard, s)
		}
		suit, ok := parseSuit(runes[i])
		if !ok {
			return nil, fmt.Errorf("%w: bad suit %q", ErrInvalidCard, string(runes[i]))
		}
		i++

		card, ok := NewCard(suit, rank)
		if !ok {
			return nil, fmt.Errorf("%w: rank %d out of range", ErrInvalidCard, rank)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func parseRank(r []rune) (rank, width int, ok bool) {
	if len(r) >= 2 && r[0] == '1' && r[1] == '0' {
		return 10, 2, true
	}
	switch unicode.ToUpper(r[0]) {
	case 'A', '1':
		return 1, 1, true
	case 'T':
		return 10, 1, true
	case 'J':
		return 11, 1, true
	case 'Q':
		return 12, 1, true
	case 'K':
		return 13, 1, true
	}
	if r[0] >= '2' && r[0] <= '9' {
		return int(r[0] - '0'), 1, true
	}
	return 0, 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch unicode.ToLower(r) {
	case 'h', '♥':
		return Heart, true
	case 'c', '♣':
		return Club, true
	case 'd', '♦':
		return Diamond, true
	case 's', '♠':
		return Spade, true
	}
	return 0, false
}

// FormatCards renders cards space separated, in order.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Notations returns the ASCII notation of each card, in order.
func Notations(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Notation()
	}
	return out
}
