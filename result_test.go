package dialogs

import (
	"context"
	"errors"
	"testing"
)

func TestResult_SettleOnce(t *testing.T) {
	t.Parallel()

	r := newResult()
	if !r.resolve("first") {
		t.Fatalf("first settle reported as duplicate")
	}
	if r.resolve("second") || r.reject(errors.New("late")) {
		t.Fatalf("later settle attempts must be no-ops")
	}

	v, err := r.Await(context.Background())
	if err != nil || v != "first" {
		t.Fatalf("Await = (%v, %v), want (first, nil)", v, err)
	}

	select {
	case <-r.Done():
	default:
		t.Fatalf("Done not closed after settle")
	}
}

func TestResult_AwaitHonorsContext(t *testing.T) {
	t.Parallel()

	r := newResult()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Await(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	// The result is still pending; a settle after the abandoned wait
	// delivers to the next caller.
	r.resolve(1)
	v, err := r.Await(context.Background())
	if err != nil || v != 1 {
		t.Fatalf("Await = (%v, %v), want (1, nil)", v, err)
	}
}

func TestAwait_TypedDecode(t *testing.T) {
	t.Parallel()

	type prefs struct {
		Theme string `json:"theme"`
		Zoom  int    `json:"zoom"`
	}

	r := newResult()
	r.resolve(map[string]any{"theme": "dark", "zoom": 2})

	got, err := Await[prefs](context.Background(), r)
	if err != nil {
		t.Fatalf("Await[prefs]: %v", err)
	}
	if got.Theme != "dark" || got.Zoom != 2 {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestAwait_DirectAssertion(t *testing.T) {
	t.Parallel()

	r := newResult()
	r.resolve("done")

	got, err := Await[string](context.Background(), r)
	if err != nil || got != "done" {
		t.Fatalf("Await[string] = (%q, %v)", got, err)
	}
}
