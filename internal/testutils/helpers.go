package testutils

import (
	"fmt"
	"testing"

	"github.com/aretw0/towers/pkg/domain"
	"github.com/stretchr/testify/require"
)

// Step is one scripted turn: an action to report, a move to apply, or an error to return.
// Report is returned as-is without touching the board.
type Step struct {
	Move   *domain.Move
	Report *domain.PlayerAction
	Finish bool
	Err    error
}

// ScriptedPlayer replays a fixed list of turns, applying moves to the board without
// any legality shortcut so the board rules are exercised as-is.
// After the script runs out it reports domain.Finished.
type ScriptedPlayer struct {
	PlayerName string
	Steps      []Step
	Calls      int
}

// MoveStep is a shorthand for a scripted move.
func MoveStep(from, to int) Step {
	return Step{Move: &domain.Move{From: from, To: to}}
}

// Name implements ports.Player.
func (p *ScriptedPlayer) Name() string {
	return p.PlayerName
}

// NextTurn implements ports.Player.
func (p *ScriptedPlayer) NextTurn(board *domain.Board) (domain.PlayerAction, error) {
	p.Calls++
	if len(p.Steps) == 0 {
		return domain.Finished(), nil
	}
	step := p.Steps[0]
	p.Steps = p.Steps[1:]

	switch {
	case step.Err != nil:
		return domain.PlayerAction{}, step.Err
	case step.Report != nil:
		return *step.Report, nil
	case step.Finish:
		return domain.Finished(), nil
	case step.Move != nil:
		disk, ok, err := board.Take(step.Move.From)
		if err != nil {
			return domain.PlayerAction{}, err
		}
		if !ok {
			return domain.PlayerAction{}, domain.ErrMissingDisk
		}
		if err := board.Put(disk, step.Move.To); err != nil {
			if restoreErr := board.Put(disk, step.Move.From); restoreErr != nil {
				return domain.PlayerAction{}, fmt.Errorf("%w (restore failed: %v)", err, restoreErr)
			}
			return domain.PlayerAction{}, err
		}
		return domain.Moved(step.Move.From, step.Move.To), nil
	}
	return domain.Finished(), nil
}

// NewBoard creates a board with n disks and fails the test on error.
func NewBoard(t *testing.T, n int) *domain.Board {
	t.Helper()

	board, err := domain.NewBoard(n)
	require.NoError(t, err, "Failed to create board")
	return board
}
