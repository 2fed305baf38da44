// Package dialogs smooths over the add-in host's callback-based dialog API.
// A Runtime bound to a spec.Host opens dialog Sessions; each Session wraps
// one host dialog, translating the host's display/message/event callbacks
// into a single one-shot Result the caller can await.
//
// The package implements no windowing, transport, or persistence of its own:
// every non-trivial operation delegates to the injected spec.Host.
package dialogs

// SessionState tracks where a Session is in its lifecycle. Resolved and
// Rejected are terminal; user dismissal surfaces as Rejected, there is no
// cancelled state.
type SessionState string

const (
	StateCreated  SessionState = "created"
	StateOpening  SessionState = "opening"
	StateOpen     SessionState = "open"
	StateResolved SessionState = "resolved"
	StateRejected SessionState = "rejected"
)
