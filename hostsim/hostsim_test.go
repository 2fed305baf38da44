package hostsim

import (
	"errors"
	"testing"

	"github.com/officebridge/dialogs-go/spec"
)

func TestDisplayDialogDeliversControl(t *testing.T) {
	t.Parallel()

	h := New()

	var got *Control
	h.DisplayDialog("https://example.com", spec.DisplayOptions{Width: 50, Height: 50}, func(ctrl spec.DialogControl, err error) {
		if err != nil {
			t.Fatalf("unexpected display error: %v", err)
		}
		got = ctrl.(*Control)
	})

	if got == nil {
		t.Fatalf("callback did not fire")
	}
	if got.URL() != "https://example.com" {
		t.Fatalf("control url = %q", got.URL())
	}
	if h.DisplayCalls() != 1 || h.LastDialog() != got {
		t.Fatalf("display bookkeeping off: calls=%d", h.DisplayCalls())
	}
}

func TestFailNextDisplayIsOneShot(t *testing.T) {
	t.Parallel()

	h := New()
	boom := errors.New("boom")
	h.FailNextDisplay(boom)

	h.DisplayDialog("https://a", spec.DisplayOptions{}, func(ctrl spec.DialogControl, err error) {
		if !errors.Is(err, boom) || ctrl != nil {
			t.Fatalf("expected failure, got ctrl=%v err=%v", ctrl, err)
		}
	})
	h.DisplayDialog("https://b", spec.DisplayOptions{}, func(ctrl spec.DialogControl, err error) {
		if err != nil || ctrl == nil {
			t.Fatalf("expected recovery, got ctrl=%v err=%v", ctrl, err)
		}
	})
}

func TestControlEmitRoutesByKind(t *testing.T) {
	t.Parallel()

	c := &Control{}
	var msgs, events []spec.DialogEvent
	c.AddEventHandler(spec.EventMessageReceived, func(ev spec.DialogEvent) { msgs = append(msgs, ev) })
	c.AddEventHandler(spec.EventReceived, func(ev spec.DialogEvent) { events = append(events, ev) })

	c.EmitMessage("ping")
	c.EmitEvent(spec.DialogEvent{Message: "closed", Code: 42})

	if len(msgs) != 1 || msgs[0].Message != "ping" {
		t.Fatalf("message events = %+v", msgs)
	}
	if len(events) != 1 || events[0].Code != 42 {
		t.Fatalf("host events = %+v", events)
	}
}

func TestMessageParentRecordsAndFails(t *testing.T) {
	t.Parallel()

	h := New()
	if err := h.MessageParent(`{"type":null,"value":null}`); err != nil {
		t.Fatalf("MessageParent: %v", err)
	}

	boom := errors.New("transport down")
	h.FailMessageParent(boom)
	if err := h.MessageParent("x"); !errors.Is(err, boom) {
		t.Fatalf("expected transport failure, got %v", err)
	}

	got := h.ParentPayloads()
	if len(got) != 1 || got[0] != `{"type":null,"value":null}` {
		t.Fatalf("payloads = %q", got)
	}
}
