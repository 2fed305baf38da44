// Package hostsim is an in-process spec.Host for driving the dialog runtime
// without a real add-in host. Tests script it: set the screen, open a
// session, then emit message or host events on the dialog control the
// display call produced.
package hostsim

import (
	"sync"

	"github.com/officebridge/dialogs-go/spec"
)

// Host implements spec.Host. The zero value is not usable; call New.
type Host struct {
	mu sync.Mutex

	inside  bool
	origin  string
	screenW float64
	screenH float64

	displayErr    error
	messageErr    error
	displayCalls  int
	dialogs       []*Control
	parentPayload []string
}

func New() *Host {
	return &Host{
		inside:  true,
		origin:  "https://localhost",
		screenW: 1920,
		screenH: 1080,
	}
}

// SetInsideHost changes what InsideHost reports.
func (h *Host) SetInsideHost(inside bool) {
	h.mu.Lock()
	h.inside = inside
	h.mu.Unlock()
}

func (h *Host) SetOrigin(origin string) {
	h.mu.Lock()
	h.origin = origin
	h.mu.Unlock()
}

func (h *Host) SetScreenSize(width, height float64) {
	h.mu.Lock()
	h.screenW = width
	h.screenH = height
	h.mu.Unlock()
}

// FailNextDisplay makes the next DisplayDialog report err instead of a
// control. One-shot.
func (h *Host) FailNextDisplay(err error) {
	h.mu.Lock()
	h.displayErr = err
	h.mu.Unlock()
}

// FailMessageParent makes every MessageParent call return err (nil to
// restore delivery).
func (h *Host) FailMessageParent(err error) {
	h.mu.Lock()
	h.messageErr = err
	h.mu.Unlock()
}

func (h *Host) InsideHost() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inside
}

func (h *Host) Origin() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.origin
}

func (h *Host) ScreenSize() (width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.screenW, h.screenH
}

// DisplayDialog records the call and completes done synchronously, the way
// a same-thread host event loop would.
func (h *Host) DisplayDialog(url string, opts spec.DisplayOptions, done spec.DisplayCallback) {
	h.mu.Lock()
	h.displayCalls++
	if err := h.displayErr; err != nil {
		h.displayErr = nil
		h.mu.Unlock()
		done(nil, err)
		return
	}
	c := &Control{url: url, opts: opts}
	h.dialogs = append(h.dialogs, c)
	h.mu.Unlock()
	done(c, nil)
}

func (h *Host) MessageParent(payload string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.messageErr != nil {
		return h.messageErr
	}
	h.parentPayload = append(h.parentPayload, payload)
	return nil
}

// DisplayCalls reports how many times DisplayDialog was invoked.
func (h *Host) DisplayCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.displayCalls
}

// LastDialog returns the control from the most recent successful display,
// or nil.
func (h *Host) LastDialog() *Control {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.dialogs) == 0 {
		return nil
	}
	return h.dialogs[len(h.dialogs)-1]
}

// ParentPayloads returns every payload delivered via MessageParent, oldest
// first.
func (h *Host) ParentPayloads() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.parentPayload...)
}

// Control implements spec.DialogControl for one simulated dialog.
type Control struct {
	mu sync.Mutex

	url  string
	opts spec.DisplayOptions

	handlers   map[spec.EventKind][]func(spec.DialogEvent)
	closeCalls int
}

func (c *Control) URL() string { return c.url }

func (c *Control) Options() spec.DisplayOptions { return c.opts }

func (c *Control) AddEventHandler(kind spec.EventKind, fn func(spec.DialogEvent)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	if c.handlers == nil {
		c.handlers = map[spec.EventKind][]func(spec.DialogEvent){}
	}
	c.handlers[kind] = append(c.handlers[kind], fn)
	c.mu.Unlock()
}

func (c *Control) Close() {
	c.mu.Lock()
	c.closeCalls++
	c.mu.Unlock()
}

// CloseCalls reports how often the runtime asked to close this dialog.
func (c *Control) CloseCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeCalls
}

// EmitMessage dispatches a message-received event carrying payload, as if
// dialog code had called the notify-opener primitive.
func (c *Control) EmitMessage(payload string) {
	c.emit(spec.EventMessageReceived, spec.DialogEvent{Message: payload})
}

// EmitEvent dispatches a non-message host event (dismissal, navigation
// failure, resize).
func (c *Control) EmitEvent(ev spec.DialogEvent) {
	c.emit(spec.EventReceived, ev)
}

func (c *Control) emit(kind spec.EventKind, ev spec.DialogEvent) {
	c.mu.Lock()
	fns := append([]func(spec.DialogEvent){}, c.handlers[kind]...)
	c.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
