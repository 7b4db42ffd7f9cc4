// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/lumen-ui/lumen/render"
	"github.com/lumen-ui/lumen/system"
)

// renderCoordinator owns the one renderer of a [Root] for the root's
// lifetime. Every forwarding call checks liveness: with no factory
// service resolved, or after disposal, forwarding is silently skipped.
type renderCoordinator struct {
	renderer render.Renderer
}

// newRenderCoordinator creates the renderer from the optional factory
// and render-loop pair. A nil factory yields a coordinator with no
// renderer, which no-ops all forwarding.
func newRenderCoordinator(factory render.Factory, loop render.Loop, win system.Window) *renderCoordinator {
	rc := &renderCoordinator{}
	if factory != nil {
		rc.renderer = factory.NewRenderer(win.Surfaces(), win.Size(), loop)
	}
	return rc
}

// active reports whether a live renderer exists.
func (rc *renderCoordinator) active() bool {
	return rc.renderer != nil
}

func (rc *renderCoordinator) paint(region image.Rectangle) {
	if rc.renderer == nil {
		return
	}
	rc.renderer.Paint(region)
}

func (rc *renderCoordinator) resized(size image.Point) {
	if rc.renderer == nil {
		return
	}
	rc.renderer.Resized(size)
}

// dispose releases the renderer and clears the reference so it can
// never be invoked again. Disposal happens at most once.
func (rc *renderCoordinator) dispose() {
	if rc.renderer == nil {
		return
	}
	rc.renderer.Dispose()
	rc.renderer = nil
}
