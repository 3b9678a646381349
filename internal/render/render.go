// internal/render/render.go
// Package render dispatches chart descriptors to a drawing backend. Each
// routine turns a descriptor's payload into the input shape the backend
// expects; the backend does the drawing.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/mwiater/fightsongs/internal/charts"
)

// ErrUnknownKind is returned for a descriptor kind with no routine.
var ErrUnknownKind = errors.New("render: unknown chart kind")

// Palette is shared by every backend for series, bars and chord groups.
var Palette = []string{"#d62828", "#f6c90e", "#1f4fd8", "#90caf9", "#ffea94", "#ff8b8b", "#7bf677", "#3d3a3a", "#169e1b"}

// PaletteColor returns the palette entry for index i, cycling.
func PaletteColor(i int) string {
	return Palette[i%len(Palette)]
}

// Container is the output surface. It is cleared before every render.
type Container interface {
	io.Writer
	Reset()
}

// Backend draws the five chart shapes.
type Backend interface {
	Scatter(w io.Writer, title string, in ScatterInput) error
	DurationByConference(w io.Writer, title string, in DurationInput) error
	Stacked(w io.Writer, title string, in StackedInput) error
	Bar(w io.Writer, title string, in BarInput) error
	Chord(w io.Writer, title string, in ChordInput) error
}

// Render clears c and draws d into it with b.
func Render(b Backend, c Container, d charts.Descriptor) error {
	c.Reset()

	var err error
	switch d.Kind {
	case charts.KindScatter:
		err = b.Scatter(c, d.Title, Scatter(d))
	case charts.KindDurationByConference:
		err = b.DurationByConference(c, d.Title, DurationByConference(d))
	case charts.KindStacked:
		err = b.Stacked(c, d.Title, Stacked(d))
	case charts.KindBar:
		err = b.Bar(c, d.Title, Bar(d))
	case charts.KindChord:
		err = b.Chord(c, d.Title, Chord(d))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", d.Kind, err)
	}
	return nil
}

// Func adapts a backend and container into the callback the navigation
// controller invokes on every transition.
func Func(b Backend, c Container) func(charts.Descriptor) error {
	return func(d charts.Descriptor) error {
		return Render(b, c, d)
	}
}
