// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform abstraction: the window/surface
// interface that concrete platform drivers implement, screen
// descriptors, and the process-wide application lifecycle.
package system

import (
	"image"

	"github.com/lumen-ui/lumen/cursors"
	"github.com/lumen-ui/lumen/events"
)

// Window is one native window or surface supplied by a platform
// driver. It delivers platform notifications through five
// single-subscriber callback slots; binding a slot again overwrites
// the previous handler, it does not chain. The driver is responsible
// for serializing delivery: no two notifications for the same window
// are ever delivered concurrently.
type Window interface {

	// Size returns the current size of the window's client area in pixels.
	Size() image.Point

	// Scale returns the current scale factor mapping layout units to
	// pixels (1 on standard density displays, 2 on typical hidpi).
	Scale() float32

	// Surfaces returns the drawable surface descriptors for this
	// window, used by render backends to create render targets.
	Surfaces() *RenderSurfaces

	// SetInputRoot binds the input coordination root for this window.
	// All input events are delivered relative to it.
	SetInputRoot(root events.InputRoot)

	// SetCursor sets the pointer cursor shown over this window.
	SetCursor(c cursors.Cursor)

	// ClearCursor restores the platform default cursor.
	ClearCursor()

	// Invalidate marks the given region of the window as damaged,
	// requesting a paint notification for it.
	Invalidate(region image.Rectangle)

	// PointToClient converts a point from screen coordinates to
	// window-local coordinates.
	PointToClient(p image.Point) image.Point

	// PointToScreen converts a point from window-local coordinates to
	// screen coordinates.
	PointToScreen(p image.Point) image.Point

	// SetClosedFunc sets the function called when the platform has
	// closed the window.
	SetClosedFunc(fun func())

	// SetInputFunc sets the function called for each input event.
	SetInputFunc(fun func(e events.Event))

	// SetPaintFunc sets the function called when a region of the
	// window needs to be redrawn.
	SetPaintFunc(fun func(region image.Rectangle))

	// SetResizedFunc sets the function called when the window's client
	// area has been resized.
	SetResizedFunc(fun func(size image.Point))

	// SetScaleChangedFunc sets the function called when the window's
	// scale factor has changed.
	SetScaleChangedFunc(fun func(scale float32))
}

// Surface is one platform drawable surface descriptor. The concrete
// type depends on the driver: a GPU swapchain handle, a shared memory
// framebuffer, or a plain image for offscreen rendering.
type Surface interface {

	// Kind identifies the descriptor type, e.g., "image" or "swapchain".
	Kind() string
}

// RenderSurfaces describes the drawable surfaces a window exposes to
// render backends, in decreasing order of preference.
type RenderSurfaces struct {
	Handles []Surface
}

// First returns the first surface of the given kind, or nil.
func (rs *RenderSurfaces) First(kind string) Surface {
	if rs == nil {
		return nil
	}
	for _, h := range rs.Handles {
		if h.Kind() == kind {
			return h
		}
	}
	return nil
}
