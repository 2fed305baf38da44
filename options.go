package dialogs

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/officebridge/dialogs-go/spec"
)

type runtimeOptions struct {
	logger *slog.Logger
	host   spec.Host

	sessionTTL  time.Duration
	maxSessions int

	defaultWidth  float64
	defaultHeight float64
}

type Option func(*runtimeOptions) error

func WithLogger(l *slog.Logger) Option {
	return func(o *runtimeOptions) error {
		o.logger = l
		return nil
	}
}

// WithHost binds the runtime to an add-in host. Required.
func WithHost(h spec.Host) Option {
	return func(o *runtimeOptions) error {
		o.host = h
		return nil
	}
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(o *runtimeOptions) error {
		o.sessionTTL = ttl
		return nil
	}
}

func WithMaxSessions(maxSessions int) Option {
	return func(o *runtimeOptions) error {
		o.maxSessions = maxSessions
		return nil
	}
}

// WithDefaultSize sets the requested size used when OpenDialog is given
// none. It is treated like an explicit request: the per-screen breakpoint
// defaults only apply when neither this nor WithSize provides one.
func WithDefaultSize(width, height float64) Option {
	return func(o *runtimeOptions) error {
		if err := validRequestedSize(width, height); err != nil {
			return err
		}
		o.defaultWidth = width
		o.defaultHeight = height
		return nil
	}
}

// WithConfig applies a parsed Config. Zero-valued fields leave the
// corresponding option untouched.
func WithConfig(c Config) Option {
	return func(o *runtimeOptions) error {
		if c.SessionTTL > 0 {
			o.sessionTTL = time.Duration(c.SessionTTL)
		}
		if c.MaxSessions > 0 {
			o.maxSessions = c.MaxSessions
		}
		if c.DefaultWidth > 0 || c.DefaultHeight > 0 {
			if err := validRequestedSize(c.DefaultWidth, c.DefaultHeight); err != nil {
				return err
			}
			o.defaultWidth = c.DefaultWidth
			o.defaultHeight = c.DefaultHeight
		}
		return nil
	}
}

type dialogOptions struct {
	width  float64
	height float64
}

// DialogOption configures a single OpenDialog call.
type DialogOption func(*dialogOptions) error

// WithSize requests a pixel size for the dialog. The resolved size is still
// capped to the live screen dimensions.
func WithSize(width, height float64) DialogOption {
	return func(o *dialogOptions) error {
		if err := validRequestedSize(width, height); err != nil {
			return err
		}
		o.width = width
		o.height = height
		return nil
	}
}

func validRequestedSize(width, height float64) error {
	for _, d := range [2]float64{width, height} {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return errors.Join(spec.ErrInvalidArgument, fmt.Errorf("bad requested size %vx%v", width, height))
		}
	}
	return nil
}
