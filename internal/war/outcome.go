package war

import "github.com/lox/warsim/internal/stacks"

// Outcome classifies a finished game.
type Outcome int

const (
	Draw Outcome = iota
	LeftWins
	RightWins
)

func (o Outcome) String() string {
	switch o {
	case LeftWins:
		return "left wins"
	case RightWins:
		return "right wins"
	default:
		return "draw"
	}
}

// Winner returns the winning side, or None for a draw.
func (o Outcome) Winner() Side {
	switch o {
	case LeftWins:
		return Left
	case RightWins:
		return Right
	default:
		return None
	}
}

// Classify decides a game from the players' final stacks. The player left
// with no cards has lost. If both still hold cards the game was cut short by
// the round cap and is a draw, never a win. If both are empty (a tie chain
// exhausted both at once) it is also a draw.
func Classify(left, right *stacks.PlayerStacks) Outcome {
	switch {
	case left.IsEmpty() && !right.IsEmpty():
		return RightWins
	case right.IsEmpty() && !left.IsEmpty():
		return LeftWins
	default:
		return Draw
	}
}
