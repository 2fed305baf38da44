package spec

// EventKind selects which dialog event stream a handler is attached to.
type EventKind string

const (
	// EventMessageReceived fires when dialog code messages its opener.
	EventMessageReceived EventKind = "dialogMessageReceived"

	// EventReceived fires for every non-message dialog event (user
	// dismissal, navigation failure, size change).
	EventReceived EventKind = "dialogEventReceived"
)

// DialogEvent is the payload delivered to event handlers. For message events
// Message holds the transported string; for host events Message/Code carry
// the host's error descriptor.
type DialogEvent struct {
	Message string `json:"message,omitempty"`
	Code    int    `json:"error,omitempty"`
}

// DisplayOptions carries the geometry handed to the host display primitive.
// Both dimensions are percentages of the screen, not pixels.
type DisplayOptions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DialogControl is the host's handle for one displayed dialog. The runtime
// holds it only long enough to attach handlers and request closure.
type DialogControl interface {
	// AddEventHandler subscribes fn to one event stream. The host
	// guarantees at most one terminating event per dialog.
	AddEventHandler(kind EventKind, fn func(DialogEvent))

	// Close asks the host to dismiss the dialog.
	Close()
}

// DisplayCallback receives the outcome of a display request: a control
// reference on success, an error descriptor on failure. Exactly one of the
// two is set.
type DisplayCallback func(ctrl DialogControl, err error)

// Host is the add-in host surface the library depends on. Implementations
// bridge to a real host runtime; hostsim provides an in-process one for
// tests.
type Host interface {
	// InsideHost reports whether the calling code runs inside the
	// expected add-in host.
	InsideHost() bool

	// Origin returns the current page origin, used as the default
	// dialog URL.
	Origin() string

	// ScreenSize returns the live screen dimensions in pixels.
	ScreenSize() (width, height float64)

	// DisplayDialog asks the host to display url sized by opts. The
	// call is asynchronous; done fires exactly once with the outcome
	// and may fire before DisplayDialog returns.
	DisplayDialog(url string, opts DisplayOptions, done DisplayCallback)

	// MessageParent delivers payload to the dialog's opener. Callable
	// only from code running inside a displayed dialog.
	MessageParent(payload string) error
}
