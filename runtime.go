package dialogs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/officebridge/dialogs-go/internal/dialogstore"
	"github.com/officebridge/dialogs-go/internal/sizeopt"
	"github.com/officebridge/dialogs-go/spec"
)

// Runtime owns the host binding and the registry of dialog sessions.
type Runtime struct {
	logger *slog.Logger
	host   spec.Host

	sessions *dialogstore.Store[*Session]

	defaultWidth  float64
	defaultHeight float64
}

func New(opts ...Option) (*Runtime, error) {
	o := runtimeOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if o.host == nil {
		return nil, errors.Join(spec.ErrInvalidArgument, errors.New("host is required"))
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	rt := &Runtime{
		logger:        o.logger,
		host:          o.host,
		sessions:      dialogstore.New[*Session](),
		defaultWidth:  o.defaultWidth,
		defaultHeight: o.defaultHeight,
	}
	if o.sessionTTL > 0 {
		rt.sessions.SetTTL(o.sessionTTL)
	}
	if o.maxSessions > 0 {
		rt.sessions.SetMaxSessions(o.maxSessions)
	}
	return rt, nil
}

// OpenDialog validates url and creates a Session for it. The resolved size
// is computed here, once, against the live screen; the host dialog itself is
// not displayed until the first Session.Result call.
//
// An empty url defaults to the host's current origin. URLs must start with
// "https".
func (r *Runtime) OpenDialog(ctx context.Context, url string, opts ...DialogOption) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.host.InsideHost() {
		return nil, spec.ErrNotInHost
	}

	var o dialogOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	if url == "" {
		url = r.host.Origin()
	}
	if !strings.HasPrefix(url, "https") {
		return nil, errors.Join(spec.ErrInvalidArgument, fmt.Errorf("dialog url must start with https: %q", url))
	}

	screenW, screenH := r.host.ScreenSize()

	reqW, reqH := o.width, o.height
	if reqW <= 0 && reqH <= 0 {
		reqW, reqH = r.defaultWidth, r.defaultHeight
	}
	if reqW <= 0 && reqH <= 0 {
		// Breakpoint defaults; screens above the widest breakpoint get
		// none and fall through to the screen-bound cap.
		if w, h, ok := sizeopt.PickDefault(screenW); ok {
			reqW, reqH = w, h
		}
	}

	size, err := sizeopt.Optimize(reqW, reqH, screenW, screenH)
	if err != nil {
		return nil, err
	}

	s := &Session{
		url:    url,
		size:   size,
		host:   r.host,
		logger: r.logger,
		state:  StateCreated,
	}
	s.id = spec.SessionID(r.sessions.Put(s))

	r.logger.Debug("dialog session created",
		"session", s.id,
		"url", url,
		"width", size.Width,
		"height", size.Height,
	)
	return s, nil
}

// Session returns the live session with the given ID.
func (r *Runtime) Session(id spec.SessionID) (*Session, error) {
	sid := strings.TrimSpace(string(id))
	if sid == "" {
		return nil, spec.ErrSessionNotFound
	}
	s, ok := r.sessions.Get(sid)
	if !ok {
		return nil, spec.ErrSessionNotFound
	}
	return s, nil
}

// CloseSession drops the session from the registry. It does not settle a
// pending Result: an opened dialog ends only when the host delivers its
// terminating event.
func (r *Runtime) CloseSession(ctx context.Context, id spec.SessionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sid := strings.TrimSpace(string(id))
	if sid == "" {
		return nil
	}
	r.sessions.Delete(sid)
	return nil
}

// NotifyOpener sends message to the dialog's opener. Callable only from code
// running inside a displayed dialog. The message is classified and wrapped
// in the DialogMessage envelope; functions are not valid messages.
func (r *Runtime) NotifyOpener(message any) error {
	if !r.host.InsideHost() {
		return spec.ErrNotInHost
	}
	payload, err := EncodeMessage(message)
	if err != nil {
		return err
	}
	if err := r.host.MessageParent(payload); err != nil {
		return errors.Join(spec.ErrDialog, err)
	}
	return nil
}
