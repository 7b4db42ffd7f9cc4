// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of GUI event, and also the level at which
// one can select which events to listen to. The type includes both the
// source of the event and its action (e.g., MouseDown and MouseUp are
// separate types). Unless otherwise noted, events are Unique, meaning
// they are always delivered individually and never compressed.
type Types int64

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See [Mouse.Button] for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	// See [Mouse.Button] for which.
	MouseUp

	// MouseMove is sent when the mouse is moving with no button down.
	// Not unique; positions are updated during compression.
	MouseMove

	// MouseDrag is sent when the mouse is moving with a button down.
	// Not unique; positions are updated during compression.
	MouseDrag

	// MouseEnter is when the mouse enters the bounding box of a new
	// element. It drives the pointer-over state and can trigger cursor
	// changes.
	MouseEnter

	// MouseLeave is when the mouse leaves the bounding box of an element
	// that previously had a MouseEnter.
	MouseLeave

	// Scroll is for scroll wheel or gesture scrolling events.
	// Not unique; deltas are integrated during compression.
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// KeyChord is generated when a non-modifier key is released and
	// contains a string representation of the full chord.
	KeyChord

	// Window reports window lifecycle changes: show, focus, and close.
	Window

	// WindowResize happens when the window has been resized, which can
	// happen continuously during a user resizing episode. Not unique.
	WindowResize

	// WindowPaint is sent when part of the window needs to be redrawn.
	// Not unique.
	WindowPaint

	// WindowScale is sent when the window's scale factor has changed,
	// as when dragged to a monitor with a different pixel density.
	WindowScale

	// Custom is a user-defined event with an arbitrary data field.
	Custom
)

var typeNames = []string{"UnknownType", "MouseDown", "MouseUp", "MouseMove",
	"MouseDrag", "MouseEnter", "MouseLeave", "Scroll", "KeyDown", "KeyUp",
	"KeyChord", "Window", "WindowResize", "WindowPaint", "WindowScale",
	"Custom"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Types(" + strconv.FormatInt(int64(t), 10) + ")"
	}
	return typeNames[t]
}
