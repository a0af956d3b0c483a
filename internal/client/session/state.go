package session

import "errors"

// ErrNotAuthenticated is returned by operations that need an active session.
var ErrNotAuthenticated = errors.New("not authenticated")

// State of the session state machine.
type State int

const (
	StateAnonymous State = iota
	StateActive
	// StateExpired is transient: the manager passes through it on timeout
	// and immediately settles in StateAnonymous.
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateActive:
		return "active"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Signal is a user-interaction signal that counts as activity.
type Signal string

const (
	SignalPointerMove Signal = "mousemove"
	SignalKeyPress    Signal = "keypress"
	SignalClick       Signal = "click"
	SignalScroll      Signal = "scroll"
	SignalTouchStart  Signal = "touchstart"
)

// ActivitySignals lists every signal the manager reacts to.
var ActivitySignals = []Signal{
	SignalPointerMove,
	SignalKeyPress,
	SignalClick,
	SignalScroll,
	SignalTouchStart,
}

func (s Signal) valid() bool {
	for _, known := range ActivitySignals {
		if s == known {
			return true
		}
	}
	return false
}
