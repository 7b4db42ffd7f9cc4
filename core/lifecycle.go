// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// registerExitHook registers this root with the application-wide
// lifecycle, if that collaborator is present. The hook fires when the
// application exits, whichever window drove it.
func (r *Root) registerExitHook() {
	if r.lifecycle == nil {
		return
	}
	r.exitToken = r.lifecycle.AddExitFunc(r.appExit)
}

// removeExitHook unregisters the exit hook. It must be safe when
// registration never happened (no lifecycle collaborator) and when
// called after a previous removal: [system.Lifecycle.RemoveExitFunc]
// tolerates nil and unknown tokens.
func (r *Root) removeExitHook() {
	if r.lifecycle == nil {
		return
	}
	r.lifecycle.RemoveExitFunc(r.exitToken)
	r.exitToken = nil
}

// appExit runs the [Root.AppExit] extension point, if set.
func (r *Root) appExit() {
	if r.AppExit != nil {
		r.AppExit()
	}
}
