// Package sizeopt computes dialog geometry: requested pixel sizes capped to
// the screen with a fixed chrome margin, plus the screen-relative percentages
// the host display primitive consumes.
package sizeopt

import (
	"errors"
	"fmt"
	"math"

	"github.com/officebridge/dialogs-go/spec"
)

// Margin is the pixel allowance reserved for host chrome on each axis.
const Margin = 30

// CapToScreen bounds a requested dimension to the screen. Unset (<= 0) or
// oversized requests take the screen bound.
func CapToScreen(requested, screen float64) float64 {
	if requested > 0 && requested < screen-Margin {
		return requested
	}
	return screen - Margin
}

// ToPercent converts a pixel value to a percentage of the screen dimension.
// No rounding is applied.
func ToPercent(value, screen float64) float64 {
	return value * 100 / screen
}

// Optimize caps both requested dimensions against the screen and derives the
// percentage pair from the capped values. Screen dimensions must be positive
// and finite.
func Optimize(requestedWidth, requestedHeight, screenWidth, screenHeight float64) (spec.DialogSize, error) {
	if err := validScreen(screenWidth, screenHeight); err != nil {
		return spec.DialogSize{}, err
	}

	w := CapToScreen(requestedWidth, screenWidth)
	h := CapToScreen(requestedHeight, screenHeight)

	return spec.DialogSize{
		Width:         w,
		Height:        h,
		WidthPercent:  ToPercent(w, screenWidth),
		HeightPercent: ToPercent(h, screenHeight),
	}, nil
}

// PickDefault selects a canned requested size from the screen width when the
// caller gave none. Screens wider than 1920 have no canned default; callers
// fall through to Optimize with whatever was requested.
func PickDefault(screenWidth float64) (width, height float64, ok bool) {
	switch {
	case screenWidth <= 640:
		return 640, 480, true
	case screenWidth <= 1366:
		return 1024, 768, true
	case screenWidth <= 1920:
		return 1600, 900, true
	default:
		return 0, 0, false
	}
}

func validScreen(w, h float64) error {
	for _, d := range [2]float64{w, h} {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return errors.Join(spec.ErrInvalidArgument, fmt.Errorf("bad screen dimensions %vx%v", w, h))
		}
	}
	return nil
}
