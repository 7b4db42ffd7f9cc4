// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors provides the standard pointer cursor values and the
// contract elements implement to publish their current cursor.
package cursors

import "strconv"

// Cursor represents a cursor that can be set by an element for the pointer
// hovering over it. The names and meanings follow the standard CSS cursor
// values.
type Cursor int32

const (
	// None indicates no preference; the platform default cursor is used.
	None Cursor = iota

	// Arrow is the standard arrow cursor.
	Arrow

	// ContextMenu indicates that a context menu is available.
	ContextMenu

	// Help indicates that help information is available.
	Help

	// Pointer is a pointing hand indicating a clickable element.
	Pointer

	// Progress indicates that the program is busy but can still be
	// interacted with.
	Progress

	// Wait indicates that the program is busy and cannot be interacted with.
	Wait

	// Crosshair is a precise selection cursor.
	Crosshair

	// Text indicates selectable text.
	Text

	// Move indicates that the element can be moved.
	Move

	// NotAllowed indicates that the requested action will not be carried out.
	NotAllowed

	// Grab indicates that the element can be grabbed.
	Grab

	// Grabbing indicates that the element is actively being grabbed.
	Grabbing

	// ResizeCol indicates that a column boundary can be resized horizontally.
	ResizeCol

	// ResizeRow indicates that a row boundary can be resized vertically.
	ResizeRow

	// ResizeEW is a horizontal bidirectional resize cursor.
	ResizeEW

	// ResizeNS is a vertical bidirectional resize cursor.
	ResizeNS

	// ResizeNESW is a diagonal bidirectional resize cursor (northeast-southwest).
	ResizeNESW

	// ResizeNWSE is a diagonal bidirectional resize cursor (northwest-southeast).
	ResizeNWSE
)

var cursorNames = []string{"none", "arrow", "context-menu", "help", "pointer",
	"progress", "wait", "crosshair", "text", "move", "not-allowed", "grab",
	"grabbing", "resize-col", "resize-row", "resize-ew", "resize-ns",
	"resize-nesw", "resize-nwse"}

func (c Cursor) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "Cursor(" + strconv.Itoa(int(c)) + ")"
	}
	return cursorNames[c]
}

// Source is implemented by elements that publish a stream of cursor values.
// An element whose cursor depends on internal state (text selection,
// resize handles, drag state) emits a new value whenever it changes.
type Source interface {

	// OnCursor registers the given function to be called for the current
	// cursor value and every subsequent change. It returns a cancel
	// function that stops further calls; cancel must be safe to call
	// more than once.
	OnCursor(fn func(c Cursor)) (cancel func())
}
