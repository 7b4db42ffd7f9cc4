// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/lumen-ui/lumen/cursors"
	"github.com/lumen-ui/lumen/events"
	"github.com/lumen-ui/lumen/system"
)

// cursorTracker follows the element the pointer currently overlaps
// and forwards that element's cursor to the platform window. It is one
// continuously-running subscription on the root's pointer-over slot,
// with switch semantics: when the tracked element changes, the
// subscription to the previous element's cursor source is torn down
// before the new one is established, so there is at most one active
// cursor subscription and a superseded element can never set the
// cursor afterwards.
type cursorTracker struct {
	win system.Window

	// active is the element whose cursor source is currently
	// subscribed, rechecked on every emission to reject stale sources
	// that keep calling after cancel.
	active events.Element

	// cancel tears down the current cursor-source subscription.
	cancel func()

	stopped bool
}

// newCursorTracker starts tracking on the given root, claiming its
// pointer-over slot.
func newCursorTracker(r *Root, win system.Window) *cursorTracker {
	t := &cursorTracker{win: win}
	r.onPointerOver = t.elementChanged
	return t
}

// elementChanged switches tracking to the given element.
func (t *cursorTracker) elementChanged(el events.Element) {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.active = el
	if t.stopped {
		return
	}
	src, ok := el.(cursors.Source)
	if !ok {
		// no cursor stream: treat as empty, platform default applies
		t.win.ClearCursor()
		return
	}
	t.cancel = src.OnCursor(func(c cursors.Cursor) {
		if t.stopped || t.active != el {
			return
		}
		if c == cursors.None {
			t.win.ClearCursor()
			return
		}
		t.win.SetCursor(c)
	})
}

// stop tears the tracker down for good, on root close.
func (t *cursorTracker) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.active = nil
	t.stopped = true
}
