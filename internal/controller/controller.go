// Package controller holds the selection and roll state shared by the
// interactive front ends.
//
// The controller moves a cursor over the registry with wrap-around and rolls
// the selected die. All transitions are synchronous and are no-ops on an
// empty registry. Quitting is left to the front end's event loop.
package controller

import (
	"wuerfel/internal/dice"
	"wuerfel/internal/log"
	"wuerfel/internal/random"
)

// Controller tracks the selected die and the last roll.
type Controller struct {
	registry *dice.Registry
	roller   random.Roller

	// index is only meaningful when selected is true
	index    int
	selected bool

	lastRoll int
	rolled   bool
}

// New creates a controller with nothing selected and no roll.
func New(registry *dice.Registry, roller random.Roller) *Controller {
	return &Controller{
		registry: registry,
		roller:   roller,
	}
}

// Registry returns the dice the controller navigates.
func (c *Controller) Registry() *dice.Registry {
	return c.registry
}

// Selected returns the cursor position, ok is false while nothing is selected.
func (c *Controller) Selected() (index int, ok bool) {
	return c.index, c.selected
}

// SelectedDie resolves the cursor against the registry.
func (c *Controller) SelectedDie() (*dice.Die, bool) {
	if !c.selected {
		return nil, false
	}
	return c.registry.At(c.index)
}

// LastRoll returns the most recent roll, ok is false before the first one.
func (c *Controller) LastRoll() (value int, ok bool) {
	return c.lastRoll, c.rolled
}

// SelectPrevious moves the cursor back, wrapping from the first die (or from
// no selection) to the last.
func (c *Controller) SelectPrevious() {
	n := c.registry.Len()
	if n == 0 {
		return
	}
	switch {
	case !c.selected, c.index == 0:
		c.index = n - 1
	default:
		c.index--
	}
	c.selected = true
	log.Debugf("selected die %d of %d", c.index, n)
}

// SelectNext moves the cursor forward, wrapping from the last die to the
// first. From no selection it lands on the first die.
func (c *Controller) SelectNext() {
	n := c.registry.Len()
	if n == 0 {
		return
	}
	switch {
	case !c.selected, c.index >= n-1:
		c.index = 0
	default:
		c.index++
	}
	c.selected = true
	log.Debugf("selected die %d of %d", c.index, n)
}

// Roll rolls the selected die and stores the outcome. Without a selection
// it does nothing. A die without faces leaves the last roll untouched and
// returns the range error.
func (c *Controller) Roll() error {
	d, ok := c.SelectedDie()
	if !ok {
		return nil
	}
	r, err := d.Range()
	if err != nil {
		return err
	}
	c.lastRoll = c.roller.Roll(r)
	c.rolled = true
	log.With(log.F("die", d.Name()), log.F("range", r.String()), log.F("roll", c.lastRoll)).Debug("rolled")
	return nil
}
