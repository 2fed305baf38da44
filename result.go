package dialogs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/officebridge/dialogs-go/spec"
)

// Result is a one-shot deferred dialog outcome. It settles exactly once;
// later settle attempts are no-ops, which also shields against a host that
// fires more than one terminating event.
type Result struct {
	once sync.Once
	done chan struct{}

	value any
	err   error
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

// Done is closed once the result has settled.
func (r *Result) Done() <-chan struct{} { return r.done }

// Await blocks until the result settles or ctx is cancelled. Cancellation
// abandons the wait only; the session itself cannot be aborted.
func (r *Result) Await(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.done:
		return r.value, r.err
	}
}

func (r *Result) resolve(v any) bool {
	settled := false
	r.once.Do(func() {
		r.value = v
		settled = true
		close(r.done)
	})
	return settled
}

func (r *Result) reject(err error) bool {
	settled := false
	r.once.Do(func() {
		r.err = err
		settled = true
		close(r.done)
	})
	return settled
}

// Await is the typed companion to Result.Await: the resolved value is
// decoded into T, via a JSON round-trip when a direct assertion does not
// hold. Decode failures surface as ErrDialog.
func Await[T any](ctx context.Context, r *Result) (T, error) {
	var zero T

	v, err := r.Await(ctx)
	if err != nil {
		return zero, err
	}
	if tv, ok := v.(T); ok {
		return tv, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return zero, errors.Join(spec.ErrDialog, err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return zero, errors.Join(spec.ErrDialog, err)
	}
	return out, nil
}
