package session

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/aretw0/towers/internal/logging"
	"github.com/aretw0/towers/pkg/domain"
	"github.com/aretw0/towers/pkg/ports"
)

// Session pairs one player with one board and turns raw player actions into events.
// It owns both for its entire lifetime and is not safe for concurrent use.
type Session struct {
	player ports.Player
	board  *domain.Board

	turns    int
	terminal *domain.Event // set once the first terminal event is produced

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Session.
type Option func(*Session)

// WithLogger configures a logger for turn-level events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// New creates a session over an existing board.
// The caller must not touch the board after handing it over.
func New(player ports.Player, board *domain.Board, opts ...Option) *Session {
	s := &Session{
		player: player,
		board:  board,
		logger: logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithInitialDisks creates a session over a fresh board holding n disks on the source peg.
func WithInitialDisks(player ports.Player, n int, opts ...Option) (*Session, error) {
	board, err := domain.NewBoard(n)
	if err != nil {
		return nil, err
	}
	return New(player, board, opts...), nil
}

// PlayerName returns the name of the player.
func (s *Session) PlayerName() string {
	return s.player.Name()
}

// Board returns a copy of the current board state.
func (s *Session) Board() domain.Snapshot {
	return s.board.Snapshot()
}

// NumDisks returns the number of disks in play.
func (s *Session) NumDisks() int {
	return s.board.NumDisks()
}

// Turns returns the number of events produced so far.
func (s *Session) Turns() int {
	return s.turns
}

// Done reports whether the session already produced its terminal event.
func (s *Session) Done() bool {
	return s.terminal != nil
}

// Outcome returns the terminal event, once the session produced one.
func (s *Session) Outcome() (domain.Event, bool) {
	if s.terminal == nil {
		return domain.Event{}, false
	}
	return *s.terminal, true
}

// NextTurn plays one turn and maps the player's action to an event.
// Once a terminal event was produced, the player is no longer consulted and
// the same terminal event is returned again.
func (s *Session) NextTurn() domain.Event {
	if s.terminal != nil {
		return *s.terminal
	}

	event := s.play()
	s.turns++

	s.logger.Debug("turn played",
		"player", s.player.Name(),
		"turn", s.turns,
		"event", string(event.Type),
	)
	if s.hooks.OnTurn != nil {
		s.hooks.OnTurn(s.turns, event)
	}

	if event.IsTerminal() {
		s.terminal = &event
		s.logger.Info("session finished",
			"player", s.player.Name(),
			"turns", s.turns,
			"event", string(event.Type),
		)
		if s.hooks.OnFinish != nil {
			s.hooks.OnFinish(s.turns, event)
		}
	}
	return event
}

func (s *Session) play() domain.Event {
	action, err := s.player.NextTurn(s.board)
	if err != nil {
		s.logger.Warn("player cheated", "player", s.player.Name(), "err", err)
		return domain.PlayerCheated(err.Error())
	}

	switch action.Kind {
	case domain.ActionMoved:
		if !validPeg(action.Move.From) || !validPeg(action.Move.To) {
			s.logger.Warn("player reported an impossible move", "player", s.player.Name(), "move", action.Move)
			return domain.PlayerCheated(fmt.Sprintf("reported move from %d to %d: %v",
				action.Move.From, action.Move.To, domain.ErrIndexOutOfBounds))
		}
		return domain.PlayerMovedDisk(
			domain.PegNameFromIndex(action.Move.From),
			domain.PegNameFromIndex(action.Move.To),
		)
	case domain.ActionFinished:
		if s.board.IsFinished() {
			return domain.PlayerWins()
		}
		return domain.PlayerGaveUp()
	default:
		return domain.PlayerCheated(fmt.Sprintf("unknown action %q", action.Kind))
	}
}

func validPeg(idx int) bool {
	return idx >= 0 && idx < domain.PegCount
}

// Iter returns a single-pass iterator over the session events.
func (s *Session) Iter() *Iterator {
	return &Iterator{session: s, finished: s.Done()}
}

// Iterator yields one session event per advance and ends after the first terminal event.
type Iterator struct {
	session  *Session
	finished bool
	yielded  int
}

// Next plays one turn. ok is false once the terminal event has been yielded.
func (it *Iterator) Next() (event domain.Event, ok bool) {
	if it.finished {
		return domain.Event{}, false
	}
	event = it.session.NextTurn()
	it.yielded++
	if event.IsTerminal() {
		it.finished = true
	}
	return event, true
}

// All returns the remaining events paired with their zero-based index in the iterator's sequence.
// Stopping a range loop early leaves the iterator usable for later pulls.
func (it *Iterator) All() iter.Seq2[int, domain.Event] {
	return func(yield func(int, domain.Event) bool) {
		for {
			event, ok := it.Next()
			if !ok || !yield(it.yielded-1, event) {
				return
			}
		}
	}
}
