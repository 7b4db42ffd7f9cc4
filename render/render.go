// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the renderer contracts consumed by window
// coordination roots, and a software renderer implementation that
// composites into a plain image framebuffer.
package render

import (
	"image"

	"github.com/lumen-ui/lumen/system"
)

// Renderer draws the contents of one window. It is owned exclusively
// by the window's coordination root; nothing else may call it.
type Renderer interface {

	// Paint redraws the given damaged region of the window.
	Paint(region image.Rectangle)

	// Resized adapts the renderer to a new window client size.
	Resized(size image.Point)

	// Dispose releases the renderer's resources. No other method may
	// be called after Dispose.
	Dispose()
}

// Loop schedules renderer work, such as continuous-animation ticks.
// Renderers that only paint on damage can ignore it.
type Loop interface {

	// Add registers the renderer with the loop.
	Add(r Renderer)

	// Remove unregisters the renderer from the loop.
	Remove(r Renderer)
}

// Factory creates renderers over a window's drawable surfaces. It is
// an optional service: without one, a root runs with no renderer and
// all paint forwarding is skipped.
type Factory interface {

	// NewRenderer returns a renderer drawing to the given surfaces at
	// the given initial size, registered with loop if non-nil.
	NewRenderer(surfaces *system.RenderSurfaces, size image.Point, loop Loop) Renderer
}

// Root is the view of a window coordination root consumed by the
// rendering subsystem.
type Root interface {

	// NewRenderTarget returns a new render target over the root's
	// window surfaces, using the render backend collaborator.
	NewRenderTarget() (Target, error)

	// InvalidateRender marks the given window region as damaged.
	InvalidateRender(region image.Rectangle)

	// PointToClient converts a point from screen coordinates to
	// window-local coordinates.
	PointToClient(p image.Point) image.Point

	// PointToScreen converts a point from window-local coordinates to
	// screen coordinates.
	PointToScreen(p image.Point) image.Point
}

// Target is a surface a render backend draws frames into.
type Target interface {

	// Size returns the pixel size of the target.
	Size() image.Point

	// Close releases the target.
	Close() error
}

// Backend creates render targets over platform surface descriptors.
// It is the render-interface collaborator consumed by the render-root
// view of a coordination root.
type Backend interface {

	// NewTarget returns a new render target over the given surfaces,
	// or an error if none of the descriptors is usable.
	NewTarget(surfaces *system.RenderSurfaces) (Target, error)
}
