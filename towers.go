package towers

import (
	"github.com/aretw0/towers/pkg/player"
	"github.com/aretw0/towers/pkg/session"
)

// Version is the release of the towers module.
const Version = "1.0.0"

// NewSession creates a session where the reference optimal player, named playerName,
// solves a fresh board holding disks disks on the source peg.
func NewSession(disks int, playerName string, opts ...session.Option) (*session.Session, error) {
	return session.WithInitialDisks(player.NewOptimal(playerName), disks, opts...)
}
