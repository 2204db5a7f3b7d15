// Package stacks holds a single player's cards: the draw stack they play from
// and the won stack they collect into. PopFront and Append are the only ways
// to move cards in or out.
package stacks

import (
	"fmt"

	"github.com/lox/warsim/internal/deck"
)

// PlayerStacks owns one player's draw and won stacks.
type PlayerStacks struct {
	draw     deck.Stack
	won      deck.Stack
	shuffler deck.Shuffler
}

// New creates player stacks with the given draw stack and an empty won stack.
// The won stack is reshuffled with shuffler whenever it is recycled; nil uses
// deck.DefaultShuffler.
func New(draw []deck.Card, shuffler deck.Shuffler) *PlayerStacks {
	if shuffler == nil {
		shuffler = deck.DefaultShuffler
	}
	return &PlayerStacks{
		draw:     append(deck.Stack(nil), draw...),
		shuffler: shuffler,
	}
}

// DrawStack returns a copy of the cards available to play, front first.
func (p *PlayerStacks) DrawStack() deck.Stack {
	return append(deck.Stack(nil), p.draw...)
}

// WonStack returns a copy of the captured cards not yet playable.
func (p *PlayerStacks) WonStack() deck.Stack {
	return append(deck.Stack(nil), p.won...)
}

// IsEmpty reports whether the player has no cards in either stack.
func (p *PlayerStacks) IsEmpty() bool {
	return len(p.draw) == 0 && len(p.won) == 0
}

// TotalCards returns the number of cards across both stacks.
func (p *PlayerStacks) TotalCards() int {
	return len(p.draw) + len(p.won)
}

// PopFront removes and returns the front card of the draw stack. An empty draw
// stack is first refilled from the shuffled won stack. It returns false only
// when the player has no cards at all.
func (p *PlayerStacks) PopFront() (deck.Card, bool) {
	if len(p.draw) == 0 && len(p.won) > 0 {
		p.recycle()
	}
	if len(p.draw) == 0 {
		return deck.Card{}, false
	}

	card := p.draw[0]
	p.draw = p.draw[1:]
	return card, true
}

// Append adds a batch of won cards to the back of the won stack, keeping the
// batch's order.
func (p *PlayerStacks) Append(cards []deck.Card) {
	p.won = append(p.won, cards...)
}

// recycle turns the won stack into the draw stack in uniformly random order.
func (p *PlayerStacks) recycle() {
	cards := p.won
	deck.Shuffle(cards, p.shuffler)
	p.draw = cards
	p.won = nil
}

// String renders both stacks for reports and debug logs.
func (p *PlayerStacks) String() string {
	return fmt.Sprintf("draw[%d]: %s | won[%d]: %s",
		len(p.draw), deck.FormatCards(p.draw), len(p.won), deck.FormatCards(p.won))
}
