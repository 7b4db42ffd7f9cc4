// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the GUI event model: event types, concrete
// event structs, listener registration, and the input-root contract
// consumed by the input dispatch subsystem.
package events

import (
	"fmt"
	"image"
	"time"
)

// Event is the interface for GUI events delivered from the platform
// and dispatched through the visual tree.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Init sets the timestamp of the event to now.
	Init()

	// IsHandled returns whether the event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as processed; remaining listeners
	// are skipped.
	SetHandled()

	// IsUnique returns whether the event is unique and exempt from
	// queue compression.
	IsUnique() bool

	// HasPos returns whether the event has a window position.
	HasPos() bool

	// WindowPos returns the position in window coordinates, if HasPos.
	WindowPos() image.Point

	// Time returns the time at which the event was generated.
	Time() time.Time
}

// Base is the base type for all events, implementing the boilerplate
// parts of [Event]. Specific event types embed it and set the relevant
// fields.
type Base struct {

	// Typ is the type of the event.
	Typ Types

	// Where is the window-coordinate position of the event, for events
	// that have one.
	Where image.Point

	// Prev is the previous position for move and drag events.
	Prev image.Point

	// GenTime is when the event was generated.
	GenTime time.Time

	// Data is arbitrary payload for [Custom] events.
	Data any

	handled bool
	unique  bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) IsUnique() bool {
	return ev.unique
}

// SetUnique marks the event as unique, exempt from compression.
func (ev *Base) SetUnique() {
	ev.unique = true
}

func (ev *Base) HasPos() bool {
	return false
}

func (ev *Base) WindowPos() image.Point {
	return ev.Where
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05"))
}

// New returns a new basic event of the given type, initialized with
// the current time.
func New(typ Types) *Base {
	ev := &Base{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Init()
	return ev
}
