package ports

import "github.com/aretw0/towers/pkg/domain"

// Player is a strategy that plays the towers game.
// Each NextTurn call attempts exactly one move on the board it is given.
type Player interface {
	// Name identifies the player in logs and output.
	Name() string

	// NextTurn performs one move and reports it, or reports domain.ActionFinished
	// when the player considers the game over. A failed move is returned as an error.
	NextTurn(board *domain.Board) (domain.PlayerAction, error)
}
