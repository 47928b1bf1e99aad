package domain

import "fmt"

// Move is a relocation of the top disk of one peg to another, by peg index.
type Move struct {
	From int
	To   int
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return fmt.Sprintf("%d -> %d", m.From, m.To)
}

// ActionKind identifies what a player did during a turn.
type ActionKind string

const (
	ActionMoved    ActionKind = "moved"
	ActionFinished ActionKind = "finished"
)

// PlayerAction is the raw outcome of a single player turn.
// Move is only meaningful when Kind is ActionMoved.
type PlayerAction struct {
	Kind ActionKind
	Move Move
}

// Moved reports a successful move between two peg indices.
func Moved(from, to int) PlayerAction {
	return PlayerAction{Kind: ActionMoved, Move: Move{From: from, To: to}}
}

// Finished reports that the player considers the game over.
func Finished() PlayerAction {
	return PlayerAction{Kind: ActionFinished}
}
