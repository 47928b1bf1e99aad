// Package player provides Player strategies for the towers game.
package player

import (
	"fmt"

	"github.com/aretw0/towers/pkg/domain"
	"github.com/aretw0/towers/pkg/solver"
)

// Optimal always plays the next move of the optimal solution.
// It keeps its own move counter and is meant to be owned by a single session.
type Optimal struct {
	name       string
	nextMoveNo uint64
}

// NewOptimal creates an optimal player whose first move is move number 1.
func NewOptimal(name string) *Optimal {
	return &Optimal{
		name:       name,
		nextMoveNo: 1,
	}
}

// Name returns the player name.
func (p *Optimal) Name() string {
	return p.name
}

// MoveNumber returns the number of the next move the player will attempt.
func (p *Optimal) MoveNumber() uint64 {
	return p.nextMoveNo
}

// NextTurn implements ports.Player.
// The counter only advances when a move is produced.
func (p *Optimal) NextTurn(board *domain.Board) (domain.PlayerAction, error) {
	move, ok := solver.NextMove(p.nextMoveNo, board)
	if !ok {
		return domain.Finished(), nil
	}
	if err := apply(board, move); err != nil {
		return domain.PlayerAction{}, fmt.Errorf("cannot move from %d to %d: %w", move.From, move.To, err)
	}
	p.nextMoveNo++
	return domain.Moved(move.From, move.To), nil
}

// apply moves the top disk of move.From onto move.To.
// If the destination rejects the disk it is put back, so the board is left unchanged.
func apply(board *domain.Board, move domain.Move) error {
	disk, ok, err := board.Take(move.From)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrMissingDisk
	}
	if err := board.Put(disk, move.To); err != nil {
		if restoreErr := board.Put(disk, move.From); restoreErr != nil {
			return fmt.Errorf("%w (restore failed: %v)", err, restoreErr)
		}
		return err
	}
	return nil
}
