// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless implementation of
// [system.Window] with no physical output. It is used for testing and
// for running apps in environments without a display; tests drive it
// by calling the Deliver methods directly, standing in for the
// platform event sources.
package offscreen

import (
	"image"

	"github.com/lumen-ui/lumen/cursors"
	"github.com/lumen-ui/lumen/events"
	"github.com/lumen-ui/lumen/system"
)

// ImageSurface is the [system.Surface] descriptor exposed by offscreen
// windows: a plain RGBA framebuffer.
type ImageSurface struct {
	Frame *image.RGBA
}

func (s *ImageSurface) Kind() string { return "image" }

// RGBA returns the framebuffer; it satisfies the render package's
// frame surface contract.
func (s *ImageSurface) RGBA() *image.RGBA { return s.Frame }

// Window is a headless [system.Window]. The zero value is not usable;
// use [NewWindow].
type Window struct {

	// Pos is the position of the window in virtual screen space,
	// used by the point conversion methods.
	Pos image.Point

	size  image.Point
	scale float32

	surface *ImageSurface

	inputRoot events.InputRoot

	// current cursor state, readable by tests
	cursor    cursors.Cursor
	cursorSet bool

	// damage accumulates regions passed to Invalidate
	damage []image.Rectangle

	closedFunc       func()
	inputFunc        func(e events.Event)
	paintFunc        func(region image.Rectangle)
	resizedFunc      func(size image.Point)
	scaleChangedFunc func(scale float32)
}

// NewWindow returns a new offscreen window of the given size, with a
// scale factor of 1.
func NewWindow(size image.Point) *Window {
	w := &Window{size: size, scale: 1}
	w.surface = &ImageSurface{Frame: image.NewRGBA(image.Rectangle{Max: size})}
	return w
}

func (w *Window) Size() image.Point { return w.size }

func (w *Window) Scale() float32 { return w.scale }

func (w *Window) Surfaces() *system.RenderSurfaces {
	return &system.RenderSurfaces{Handles: []system.Surface{w.surface}}
}

func (w *Window) SetInputRoot(root events.InputRoot) { w.inputRoot = root }

// InputRoot returns the currently bound input root.
func (w *Window) InputRoot() events.InputRoot { return w.inputRoot }

func (w *Window) SetCursor(c cursors.Cursor) {
	w.cursor = c
	w.cursorSet = true
}

func (w *Window) ClearCursor() {
	w.cursor = cursors.None
	w.cursorSet = false
}

// Cursor returns the current cursor and whether one has been set
// (as opposed to the platform default being in effect).
func (w *Window) Cursor() (cursors.Cursor, bool) { return w.cursor, w.cursorSet }

func (w *Window) Invalidate(region image.Rectangle) {
	w.damage = append(w.damage, region)
}

// Damage returns the regions invalidated since the last call,
// clearing the accumulated list.
func (w *Window) Damage() []image.Rectangle {
	d := w.damage
	w.damage = nil
	return d
}

func (w *Window) PointToClient(p image.Point) image.Point { return p.Sub(w.Pos) }

func (w *Window) PointToScreen(p image.Point) image.Point { return p.Add(w.Pos) }

func (w *Window) SetClosedFunc(fun func())                      { w.closedFunc = fun }
func (w *Window) SetInputFunc(fun func(e events.Event))         { w.inputFunc = fun }
func (w *Window) SetPaintFunc(fun func(region image.Rectangle)) { w.paintFunc = fun }
func (w *Window) SetResizedFunc(fun func(size image.Point))     { w.resizedFunc = fun }
func (w *Window) SetScaleChangedFunc(fun func(scale float32))   { w.scaleChangedFunc = fun }

// DeliverInput delivers one input event, as the platform would.
func (w *Window) DeliverInput(e events.Event) {
	if w.inputFunc != nil {
		w.inputFunc(e)
	}
}

// DeliverPaint delivers a paint notification for the given damage region.
func (w *Window) DeliverPaint(region image.Rectangle) {
	if w.paintFunc != nil {
		w.paintFunc(region)
	}
}

// DeliverResize sets the window size and delivers the corresponding
// resize notification.
func (w *Window) DeliverResize(size image.Point) {
	w.size = size
	w.surface.Frame = image.NewRGBA(image.Rectangle{Max: size})
	if w.resizedFunc != nil {
		w.resizedFunc(size)
	}
}

// DeliverScaleChange sets the scale factor and delivers the
// corresponding notification.
func (w *Window) DeliverScaleChange(scale float32) {
	w.scale = scale
	if w.scaleChangedFunc != nil {
		w.scaleChangedFunc(scale)
	}
}

// DeliverClose delivers the closed notification.
func (w *Window) DeliverClose() {
	if w.closedFunc != nil {
		w.closedFunc()
	}
}
