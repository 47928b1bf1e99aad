// Package solver computes optimal Towers of Hanoi moves one at a time.
//
// The solver keeps no move list: each call derives the legal move for a move
// number from the current tops of the pegs, so it runs in constant time and
// memory for any number of disks.
package solver

import "github.com/aretw0/towers/pkg/domain"

// NextMove returns the move with the given 1-based number under optimal play.
// ok is false when the board is already finished or no legal move exists
// between the pegs selected for that move number.
func NextMove(n uint64, board *domain.Board) (move domain.Move, ok bool) {
	if board.IsFinished() {
		return domain.Move{}, false
	}

	// The smallest disk cycles 0 -> dest -> aux for an odd count and 0 -> aux -> dest for an even one.
	aux, dest := 1, 2
	if board.NumDisks()%2 == 0 {
		aux, dest = 2, 1
	}

	switch n % 3 {
	case 1:
		return legalMoveBetween(0, dest, board)
	case 2:
		return legalMoveBetween(0, aux, board)
	default:
		return legalMoveBetween(aux, dest, board)
	}
}

// legalMoveBetween resolves the direction of a move between two pegs: the smaller top disk moves.
func legalMoveBetween(a, b int, board *domain.Board) (domain.Move, bool) {
	diskA, okA, errA := board.Peek(a)
	diskB, okB, errB := board.Peek(b)
	if errA != nil || errB != nil {
		return domain.Move{}, false
	}

	switch {
	case okA && okB && diskB.Less(diskA):
		return domain.Move{From: b, To: a}, true
	case okA:
		return domain.Move{From: a, To: b}, true
	case okB:
		return domain.Move{From: b, To: a}, true
	default:
		return domain.Move{}, false
	}
}
