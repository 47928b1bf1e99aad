package session_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/towers/internal/testutils"
	"github.com/aretw0/towers/pkg/domain"
	"github.com/aretw0/towers/pkg/player"
	"github.com/aretw0/towers/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *session.Session) []domain.Event {
	var events []domain.Event
	for _, event := range s.Iter().All() {
		events = append(events, event)
	}
	return events
}

func TestSession_OptimalPlayerWins(t *testing.T) {
	for n := 0; n <= 10; n++ {
		t.Run(fmt.Sprintf("%d disks", n), func(t *testing.T) {
			s, err := session.WithInitialDisks(player.NewOptimal("Joe"), n)
			require.NoError(t, err)

			events := collect(s)

			require.Len(t, events, 1<<n)
			for _, event := range events[:len(events)-1] {
				assert.Equal(t, domain.EventPlayerMovedDisk, event.Type)
			}
			assert.Equal(t, domain.PlayerWins(), events[len(events)-1])
			assert.Equal(t, n, s.NumDisks(), "disks are conserved")
			assert.True(t, s.Done())
			assert.Equal(t, 1<<n, s.Turns())
		})
	}
}

func TestSession_KnownScenarios(t *testing.T) {
	moved := domain.PlayerMovedDisk

	t.Run("one disk", func(t *testing.T) {
		s, err := session.WithInitialDisks(player.NewOptimal("Joe"), 1)
		require.NoError(t, err)

		assert.Equal(t, []domain.Event{
			moved(domain.Source, domain.Destination),
			domain.PlayerWins(),
		}, collect(s))
	})

	t.Run("two disks", func(t *testing.T) {
		s, err := session.WithInitialDisks(player.NewOptimal("Joe"), 2)
		require.NoError(t, err)

		assert.Equal(t, []domain.Event{
			moved(domain.Source, domain.Middle),
			moved(domain.Source, domain.Destination),
			moved(domain.Middle, domain.Destination),
			domain.PlayerWins(),
		}, collect(s))
	})

	t.Run("three disks", func(t *testing.T) {
		s, err := session.WithInitialDisks(player.NewOptimal("Joe"), 3)
		require.NoError(t, err)

		events := collect(s)
		assert.Len(t, events, 8)
		assert.Equal(t, domain.Snapshot{{}, {}, {3, 2, 1}}, s.Board())
	})
}

func TestSession_GaveUp(t *testing.T) {
	board := testutils.NewBoard(t, 2)
	p := &testutils.ScriptedPlayer{
		PlayerName: "Quitter",
		Steps:      []testutils.Step{testutils.MoveStep(0, 1), {Finish: true}},
	}
	s := session.New(p, board)

	assert.Equal(t, []domain.Event{
		domain.PlayerMovedDisk(domain.Source, domain.Middle),
		domain.PlayerGaveUp(),
	}, collect(s))
}

func TestSession_Cheated(t *testing.T) {
	tests := []struct {
		name    string
		steps   []testutils.Step
		wantErr error
	}{
		{
			name:    "oversized disk",
			steps:   []testutils.Step{testutils.MoveStep(0, 1), testutils.MoveStep(0, 1)},
			wantErr: domain.ErrOversizedDisk,
		},
		{
			name:    "index out of bounds",
			steps:   []testutils.Step{testutils.MoveStep(0, 3)},
			wantErr: domain.ErrIndexOutOfBounds,
		},
		{
			name:    "missing disk",
			steps:   []testutils.Step{testutils.MoveStep(1, 2)},
			wantErr: domain.ErrMissingDisk,
		},
		{
			name:    "player error",
			steps:   []testutils.Step{{Err: errors.New("flipped the table")}},
			wantErr: errors.New("flipped the table"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutils.NewBoard(t, 2)
			p := &testutils.ScriptedPlayer{PlayerName: "Cheater", Steps: tt.steps}
			s := session.New(p, board)

			events := collect(s)
			last := events[len(events)-1]
			assert.Equal(t, domain.EventPlayerCheated, last.Type)
			assert.Contains(t, last.Message, tt.wantErr.Error())
			for _, event := range events[:len(events)-1] {
				assert.Equal(t, domain.EventPlayerMovedDisk, event.Type)
			}
			assert.Equal(t, 2, s.NumDisks(), "a rejected move keeps every disk on the board")
		})
	}
}

func TestSession_ReportedMoveOffTheBoardIsCheating(t *testing.T) {
	tests := []struct {
		name string
		move domain.PlayerAction
	}{
		{"destination past the last peg", domain.Moved(0, 7)},
		{"negative source", domain.Moved(-1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &testutils.ScriptedPlayer{
				PlayerName: "Liar",
				Steps:      []testutils.Step{{Report: &tt.move}, {Finish: true}},
			}
			s := session.New(p, testutils.NewBoard(t, 2))

			var events []domain.Event
			require.NotPanics(t, func() { events = collect(s) })
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventPlayerCheated, events[0].Type)
			assert.Contains(t, events[0].Message, domain.ErrIndexOutOfBounds.Error())
			assert.True(t, s.Done())
			assert.Equal(t, 1, p.Calls, "the player is not asked again once it cheated")
		})
	}
}

func TestSession_StopsAfterTerminalEvent(t *testing.T) {
	p := &testutils.ScriptedPlayer{PlayerName: "Quitter", Steps: []testutils.Step{{Finish: true}}}
	s := session.New(p, testutils.NewBoard(t, 3))

	it := s.Iter()
	event, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, domain.PlayerGaveUp(), event)

	_, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, p.Calls, "player is not consulted after the terminal event")

	// A fresh iterator over a finished session is already exhausted.
	_, ok = s.Iter().Next()
	assert.False(t, ok)

	// NextTurn keeps reporting the terminal event without playing.
	assert.Equal(t, domain.PlayerGaveUp(), s.NextTurn())
	assert.Equal(t, 1, p.Calls)
	assert.Equal(t, 1, s.Turns())

	outcome, done := s.Outcome()
	assert.True(t, done)
	assert.Equal(t, domain.PlayerGaveUp(), outcome)
}

func TestSession_IteratorIsLazy(t *testing.T) {
	p := &testutils.ScriptedPlayer{
		PlayerName: "Lazy",
		Steps:      []testutils.Step{testutils.MoveStep(0, 2), testutils.MoveStep(0, 1)},
	}
	s := session.New(p, testutils.NewBoard(t, 3))

	it := s.Iter()
	for i, event := range it.All() {
		assert.Equal(t, 0, i)
		assert.Equal(t, domain.PlayerMovedDisk(domain.Source, domain.Destination), event)
		break
	}
	assert.Equal(t, 1, p.Calls, "one pull plays one turn")
	assert.False(t, s.Done())

	// Resuming keeps the running index.
	var indices []int
	for i := range it.All() {
		indices = append(indices, i)
	}
	assert.Equal(t, []int{1, 2}, indices)
	assert.Equal(t, 3, p.Calls)
}

func TestSession_Hooks(t *testing.T) {
	var turns []int
	var finished []domain.Event
	hooks := domain.LifecycleHooks{
		OnTurn: func(turn int, event domain.Event) {
			turns = append(turns, turn)
		},
		OnFinish: func(total int, event domain.Event) {
			assert.Equal(t, 4, total)
			finished = append(finished, event)
		},
	}

	s, err := session.WithInitialDisks(player.NewOptimal("Joe"), 2, session.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	collect(s)
	s.NextTurn()

	assert.Equal(t, []int{1, 2, 3, 4}, turns)
	assert.Equal(t, []domain.Event{domain.PlayerWins()}, finished)
}

func TestSession_InvalidDiskCount(t *testing.T) {
	_, err := session.WithInitialDisks(player.NewOptimal("Joe"), -2)
	assert.ErrorIs(t, err, domain.ErrInvalidDiskCount)
}
