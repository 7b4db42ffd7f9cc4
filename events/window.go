// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// WinActions is the action taken on a window by a [Window] event.
type WinActions int32

const (
	// NoWinAction is the zero value.
	NoWinAction WinActions = iota

	// WinClose means the window is being closed.
	WinClose

	// WinShow means the window has been shown, which happens once,
	// shortly after creation.
	WinShow

	// WinFocus means the window has received keyboard focus.
	WinFocus

	// WinFocusLost means the window has lost keyboard focus.
	WinFocusLost
)

var winActionNames = []string{"NoWinAction", "WinClose", "WinShow", "WinFocus", "WinFocusLost"}

func (a WinActions) String() string {
	if a < 0 || int(a) >= len(winActionNames) {
		return "WinActions(?)"
	}
	return winActionNames[a]
}

// WindowEvent reports window lifecycle changes.
type WindowEvent struct {
	Base

	// Action is what happened to the window.
	Action WinActions
}

func (ev *WindowEvent) String() string {
	return fmt.Sprintf("%v{Action: %v, Time: %v}", ev.Type(), ev.Action, ev.Time().Format("04:05"))
}

// NewWindow returns a new window event with the given action.
func NewWindow(act WinActions) *WindowEvent {
	ev := &WindowEvent{}
	ev.Typ = Window
	ev.SetUnique()
	ev.Init()
	ev.Action = act
	return ev
}
