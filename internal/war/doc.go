// Package war resolves rounds of the two-player War card game and runs whole
// games to completion.
//
// Each round compares the front card of both players. The higher rank takes
// every contested card into its won stack; equal ranks start a tie chain in
// which another pair is drawn and added to the same contested pile until a
// strict winner appears. If either player runs out of cards, including part
// way through a tie chain, the round ends the game and the contested pile is
// discarded rather than returned to anyone.
//
// A game stops when a round ends it or when the round cap is reached. A
// capped game has no winner; see Classify.
package war
