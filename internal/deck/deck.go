package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrSuitSize is returned when a deck is requested with an impossible suit size.
	ErrSuitSize = errors.New("suit size must be between 1 and 13")
	// ErrOddDeck is returned when a deck cannot be split evenly between two players.
	ErrOddDeck = errors.New("deck should be divisible by two")
)

// Stack is an ordered run of cards. Index 0 is the front, the next card to play.
type Stack []Card

// Shuffler is a source of uniform permutations. *rand.Rand from math/rand/v2
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler uses the process-wide math/rand/v2 source.
var DefaultShuffler Shuffler = globalShuffler{}

// New builds an ordered deck with every rank from 1 to suitSize in each suit.
func New(suitSize int) ([]Card, error) {
	if suitSize < 1 || suitSize > SuitSize {
		return nil, fmt.Errorf("%w: got %d", ErrSuitSize, suitSize)
	}

	cards := make([]Card, 0, len(Suits)*suitSize)
	for _, suit := range Suits {
		for rank := 1; rank <= suitSize; rank++ {
			cards = append(cards, Card{suit: suit, rank: rank})
		}
	}
	return cards, nil
}

// Standard returns an ordered 52-card deck.
func Standard() []Card {
	cards, _ := New(SuitSize)
	return cards
}

// Shuffle randomizes the order of cards in place.
func Shuffle(cards []Card, shuffler Shuffler) {
	if shuffler == nil {
		shuffler = DefaultShuffler
	}
	shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Split deals the deck into two equal halves: the first half to the left
// player, the second half to the right.
func Split(cards []Card) (left, right []Card, err error) {
	if len(cards)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %d cards", ErrOddDeck, len(cards))
	}
	half := len(cards) / 2
	left = append([]Card(nil), cards[:half]...)
	right = append([]Card(nil), cards[half:]...)
	return left, right, nil
}

// Deal builds, shuffles and splits a deck in one step.
func Deal(suitSize int, shuffler Shuffler) (left, right []Card, err error) {
	cards, err := New(suitSize)
	if err != nil {
		return nil, nil, err
	}
	Shuffle(cards, shuffler)
	return Split(cards)
}

// Kings counts the highest-rank cards in a hand.
func Kings(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.IsKing() {
			n++
		}
	}
	return n
}

// IsOrdered reports whether cards are still in New's construction order, i.e.
// ranks ascend within each suit and every new suit restarts at rank 1.
func IsOrdered(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		prev, cur := cards[i-1], cards[i]
		if cur.suit != prev.suit {
			if cur.rank != 1 {
				return false
			}
			continue
		}
		if cur.rank <= prev.rank {
			return false
		}
	}
	return true
}
