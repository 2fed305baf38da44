package dialogs

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/officebridge/dialogs-go/spec"
)

// Session is one opener-to-dialog interaction, from display request to
// close. It owns exactly one Result; the host dialog control is held only
// long enough to attach handlers and request closure.
type Session struct {
	id     spec.SessionID
	url    string
	size   spec.DialogSize
	host   spec.Host
	logger *slog.Logger

	mu     sync.Mutex
	state  SessionState
	result *Result

	closeOnce sync.Once
}

func (s *Session) ID() spec.SessionID { return s.id }

func (s *Session) URL() string { return s.url }

// Size is the geometry resolved at OpenDialog time. It is never recomputed,
// even if the screen changes afterwards.
func (s *Session) Size() spec.DialogSize { return s.size }

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the session's one-shot result, displaying the host dialog
// on first call. Every call returns the same *Result and the host display
// primitive is invoked at most once per session.
func (s *Session) Result() *Result {
	s.mu.Lock()
	if s.result != nil {
		r := s.result
		s.mu.Unlock()
		return r
	}
	r := newResult()
	s.result = r
	s.state = StateOpening
	s.mu.Unlock()

	// The display callback may fire on this goroutine before
	// DisplayDialog returns; the lock must not be held here.
	s.host.DisplayDialog(s.url, spec.DisplayOptions{
		Width:  s.size.WidthPercent,
		Height: s.size.HeightPercent,
	}, s.displayed)
	return r
}

func (s *Session) displayed(ctrl spec.DialogControl, err error) {
	if err != nil {
		s.reject(errors.Join(spec.ErrDialog, err))
		return
	}

	s.setState(StateOpen)
	ctrl.AddEventHandler(spec.EventMessageReceived, func(ev spec.DialogEvent) {
		s.onMessage(ctrl, ev)
	})
	ctrl.AddEventHandler(spec.EventReceived, func(ev spec.DialogEvent) {
		s.onEvent(ctrl, ev)
	})
}

func (s *Session) onMessage(ctrl spec.DialogControl, ev spec.DialogEvent) {
	defer s.closeDialog(ctrl)

	v, err := decodeMessage(ev.Message)
	if err != nil {
		s.reject(errors.Join(spec.ErrDialog, err))
		return
	}
	s.resolve(v)
}

func (s *Session) onEvent(ctrl spec.DialogControl, ev spec.DialogEvent) {
	defer s.closeDialog(ctrl)

	s.reject(&spec.HostError{Message: ev.Message, Code: ev.Code})
}

// closeDialog requests closure exactly once, however many events fire.
func (s *Session) closeDialog(ctrl spec.DialogControl) {
	s.closeOnce.Do(ctrl.Close)
}

func (s *Session) resolve(v any) {
	if !s.result.resolve(v) {
		return
	}
	s.setState(StateResolved)
	s.logger.Debug("dialog session resolved", "session", s.id)
}

func (s *Session) reject(err error) {
	if !s.result.reject(err) {
		return
	}
	s.setState(StateRejected)
	s.logger.Debug("dialog session rejected", "session", s.id, "err", err)
}

func (s *Session) setState(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
