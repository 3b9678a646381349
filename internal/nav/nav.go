// internal/nav/nav.go
// Package nav holds the chart cursor and re-renders on every move.
package nav

import (
	"errors"

	"github.com/mwiater/fightsongs/internal/charts"
)

// ErrEmpty is returned when a controller is built without descriptors.
var ErrEmpty = errors.New("nav: no charts to navigate")

// RenderFunc draws one descriptor.
type RenderFunc func(charts.Descriptor) error

// Controller owns the current index over a fixed descriptor sequence.
type Controller struct {
	descriptors []charts.Descriptor
	index       int
	render      RenderFunc
}

// New returns a controller positioned at the first chart. Nothing is drawn
// until Start.
func New(descriptors []charts.Descriptor, render RenderFunc) (*Controller, error) {
	if len(descriptors) == 0 {
		return nil, ErrEmpty
	}
	if render == nil {
		render = func(charts.Descriptor) error { return nil }
	}
	return &Controller{descriptors: descriptors, render: render}, nil
}

// Start renders the current chart.
func (c *Controller) Start() error {
	return c.render(c.Current())
}

// Next advances cyclically and renders.
func (c *Controller) Next() error {
	c.index = c.PeekNext()
	return c.render(c.Current())
}

// Previous steps back cyclically and renders.
func (c *Controller) Previous() error {
	c.index = c.PeekPrevious()
	return c.render(c.Current())
}

// Index returns the current position in [0, Len()).
func (c *Controller) Index() int { return c.index }

// Len returns the number of charts.
func (c *Controller) Len() int { return len(c.descriptors) }

// Current returns the descriptor at the cursor.
func (c *Controller) Current() charts.Descriptor { return c.descriptors[c.index] }

// PeekNext returns the index Next would move to.
func (c *Controller) PeekNext() int {
	return (c.index + 1) % len(c.descriptors)
}

// PeekPrevious returns the index Previous would move to.
func (c *Controller) PeekPrevious() int {
	n := len(c.descriptors)
	return (c.index - 1 + n) % n
}
