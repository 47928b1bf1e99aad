package domain

import (
	"encoding/json"
	"fmt"
)

// PegName names a peg by its role on the board.
type PegName int

const (
	Source PegName = iota
	Middle
	Destination
)

// PegNameFromIndex converts a board index into a PegName.
// It panics for indices outside the board: the board rejects those before a move can be reported.
func PegNameFromIndex(index int) PegName {
	switch index {
	case 0:
		return Source
	case 1:
		return Middle
	case 2:
		return Destination
	}
	panic(fmt.Sprintf("domain: peg index %d has no name", index))
}

func (p PegName) String() string {
	switch p {
	case Source:
		return "Source"
	case Middle:
		return "Middle"
	case Destination:
		return "Destination"
	}
	return fmt.Sprintf("PegName(%d)", int(p))
}

// MarshalText encodes the peg name in lower case ("source", "middle", "destination").
func (p PegName) MarshalText() ([]byte, error) {
	switch p {
	case Source:
		return []byte("source"), nil
	case Middle:
		return []byte("middle"), nil
	case Destination:
		return []byte("destination"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, int(p))
}

// EventType defines the category of a session event.
type EventType string

const (
	EventPlayerMovedDisk EventType = "player_moved_disk"
	EventPlayerWins      EventType = "player_wins"
	EventPlayerGaveUp    EventType = "player_gave_up"
	EventPlayerCheated   EventType = "player_cheated"
)

// Event is a domain-level outcome of one session turn.
// From and To are set for EventPlayerMovedDisk, Message for EventPlayerCheated.
type Event struct {
	Type    EventType
	From    PegName
	To      PegName
	Message string
}

// PlayerMovedDisk builds a move event.
func PlayerMovedDisk(from, to PegName) Event {
	return Event{Type: EventPlayerMovedDisk, From: from, To: to}
}

// PlayerWins builds the event emitted when the board is solved.
func PlayerWins() Event {
	return Event{Type: EventPlayerWins}
}

// PlayerGaveUp builds the event emitted when the player stops before the board is solved.
func PlayerGaveUp() Event {
	return Event{Type: EventPlayerGaveUp}
}

// PlayerCheated builds the event emitted when a player turn fails.
func PlayerCheated(message string) Event {
	return Event{Type: EventPlayerCheated, Message: message}
}

// IsTerminal reports whether the event ends a session.
func (e Event) IsTerminal() bool {
	return e.Type != EventPlayerMovedDisk
}

func (e Event) String() string {
	switch e.Type {
	case EventPlayerMovedDisk:
		return fmt.Sprintf("PlayerMovedDisk { from: %s, to: %s }", e.From, e.To)
	case EventPlayerWins:
		return "PlayerWins"
	case EventPlayerGaveUp:
		return "PlayerGaveUp"
	case EventPlayerCheated:
		return fmt.Sprintf("PlayerCheated(%q)", e.Message)
	}
	return string(e.Type)
}

type eventJSON struct {
	Type    EventType `json:"type"`
	From    *PegName  `json:"from,omitempty"`
	To      *PegName  `json:"to,omitempty"`
	Message string    `json:"message,omitempty"`
}

// MarshalJSON only includes the fields relevant to the event type.
func (e Event) MarshalJSON() ([]byte, error) {
	out := eventJSON{Type: e.Type, Message: e.Message}
	if e.Type == EventPlayerMovedDisk {
		from, to := e.From, e.To
		out.From, out.To = &from, &to
	}
	return json.Marshal(out)
}

// LifecycleHooks defines callbacks for session observability.
// Nil hooks are skipped.
type LifecycleHooks struct {
	// OnTurn runs after every produced event; turn counts from 1.
	OnTurn func(turn int, event Event)
	// OnFinish runs once, when the terminal event is produced.
	OnFinish func(turns int, event Event)
}
