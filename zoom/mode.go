// Package zoom computes integer scale factors and centered viewports for
// pixel-art cameras.
//
// A Mode describes how a virtual resolution is fitted into a physical
// surface. Compute is a pure function of the surface size and the mode, so
// it can be tested and reused without an ECS world or a window.
package zoom

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidScale  = errors.New("zoom: scale must be positive")
	ErrInvalidTarget = errors.New("zoom: target size must be positive")
	ErrUnknownMode   = errors.New("zoom: unknown mode")
)

// Kind identifies a Mode variant.
type Kind uint8

const (
	KindNone Kind = iota
	KindFixed
	KindFitSize
	KindFitWidth
	KindFitHeight
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindFitSize:
		return "fit_size"
	case KindFitWidth:
		return "fit_width"
	case KindFitHeight:
		return "fit_height"
	default:
		return "none"
	}
}

// Mode is a scaling strategy. The zero Mode is invalid and never produces a
// scale. Modes are comparable, so two modes are equal exactly when they would
// compute the same result for every surface.
type Mode struct {
	kind   Kind
	scale  int
	width  int
	height int
}

// Fixed uses the given scale regardless of the surface size.
func Fixed(scale int) (Mode, error) {
	if scale <= 0 {
		return Mode{}, fmt.Errorf("fixed %d: %w", scale, ErrInvalidScale)
	}
	return Mode{kind: KindFixed, scale: scale}, nil
}

// FitSize picks the largest scale at which width×height fits the surface.
func FitSize(width, height int) (Mode, error) {
	if width <= 0 || height <= 0 {
		return Mode{}, fmt.Errorf("fit_size %dx%d: %w", width, height, ErrInvalidTarget)
	}
	return Mode{kind: KindFitSize, width: width, height: height}, nil
}

// FitWidth picks the largest scale at which width fits the surface width.
func FitWidth(width int) (Mode, error) {
	if width <= 0 {
		return Mode{}, fmt.Errorf("fit_width %d: %w", width, ErrInvalidTarget)
	}
	return Mode{kind: KindFitWidth, width: width}, nil
}

// FitHeight picks the largest scale at which height fits the surface height.
func FitHeight(height int) (Mode, error) {
	if height <= 0 {
		return Mode{}, fmt.Errorf("fit_height %d: %w", height, ErrInvalidTarget)
	}
	return Mode{kind: KindFitHeight, height: height}, nil
}

func MustFixed(scale int) Mode {
	return must(Fixed(scale))
}

func MustFitSize(width, height int) Mode {
	return must(FitSize(width, height))
}

func MustFitWidth(width int) Mode {
	return must(FitWidth(width))
}

func MustFitHeight(height int) Mode {
	return must(FitHeight(height))
}

func must(m Mode, err error) Mode {
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMode builds a mode from its config name. Unused dimensions are
// ignored, so a fit_width mode only reads width.
func ParseMode(kind string, scale, width, height int) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "fixed":
		return Fixed(scale)
	case "fit_size", "fitsize", "fit":
		return FitSize(width, height)
	case "fit_width", "fitwidth":
		return FitWidth(width)
	case "fit_height", "fitheight":
		return FitHeight(height)
	default:
		return Mode{}, fmt.Errorf("%q: %w", kind, ErrUnknownMode)
	}
}

func (m Mode) Kind() Kind {
	return m.kind
}

// Valid reports whether m was built by one of the constructors.
func (m Mode) Valid() bool {
	return m.kind != KindNone
}

// Scale returns the fixed scale, or 0 for fitting modes.
func (m Mode) Scale() int {
	return m.scale
}

// Target returns the virtual size the mode fits. Dimensions the mode does
// not constrain are 0.
func (m Mode) Target() Size {
	return Size{W: m.width, H: m.height}
}

func (m Mode) String() string {
	switch m.kind {
	case KindFixed:
		return fmt.Sprintf("fixed(%d)", m.scale)
	case KindFitSize:
		return fmt.Sprintf("fit_size(%dx%d)", m.width, m.height)
	case KindFitWidth:
		return fmt.Sprintf("fit_width(%d)", m.width)
	case KindFitHeight:
		return fmt.Sprintf("fit_height(%d)", m.height)
	default:
		return "none"
	}
}
