// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonNames = []string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "Buttons(?)"
	}
	return buttonNames[b]
}

// Mouse is the event for all mouse actions except scrolling.
type Mouse struct {
	Base

	// Button is the mouse button involved, if any.
	Button Buttons
}

func (ev *Mouse) HasPos() bool {
	return true
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Time().Format("04:05"))
}

// NewMouse returns a new mouse event of the given type at the given position.
func NewMouse(typ Types, but Buttons, where image.Point) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Init()
	ev.Button = but
	ev.Where = where
	return ev
}

// NewMouseMove returns a new [MouseMove] event with current and previous positions.
func NewMouseMove(but Buttons, where, prev image.Point) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseMove
	// not unique
	ev.Init()
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	return ev
}

// MouseScroll is a mouse scrolling event, recording the delta of the scroll.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixel units.
	Delta image.Point
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Time: %v}", ev.Type(), ev.Delta, ev.Where, ev.Time().Format("04:05"))
}

// NewScroll returns a new [Scroll] event at the given position.
func NewScroll(where, delta image.Point) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	// not unique: deltas are integrated
	ev.Init()
	ev.Where = where
	ev.Delta = delta
	return ev
}
