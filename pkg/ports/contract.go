package ports

import (
	"fmt"
	"testing"

	"github.com/aretw0/towers/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSolvingPlayerContract runs a suite of tests to verify that a Player implementation
// solves fresh boards with the minimal number of moves and reports each move truthfully.
// newPlayer must return a player that has not played yet.
func RunSolvingPlayerContract(t *testing.T, newPlayer func(name string) Player) {
	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "contract", newPlayer("contract").Name())
	})

	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("Solve %d disks", n), func(t *testing.T) {
			board, err := domain.NewBoard(n)
			require.NoError(t, err)
			p := newPlayer("contract")

			moves := 0
			for {
				before := board.Snapshot()
				action, err := p.NextTurn(board)
				require.NoError(t, err, "turn %d", moves+1)

				if action.Kind == domain.ActionFinished {
					assert.Equal(t, before, board.Snapshot(), "finishing must not touch the board")
					break
				}
				require.Equal(t, domain.ActionMoved, action.Kind)
				moves++
				require.LessOrEqual(t, moves, 1<<n-1, "too many moves")

				// Exactly the reported top disk moved.
				after := board.Snapshot()
				from, to := action.Move.From, action.Move.To
				require.Len(t, after[from], len(before[from])-1, "move %d", moves)
				require.Len(t, after[to], len(before[to])+1, "move %d", moves)
				assert.Equal(t, before[from][len(before[from])-1], after[to][len(after[to])-1], "move %d", moves)
				assert.Equal(t, n, board.NumDisks(), "disks are conserved")
			}

			assert.Equal(t, 1<<n-1, moves)
			assert.True(t, board.IsFinished())
		})
	}
}
