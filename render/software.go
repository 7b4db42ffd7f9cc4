// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/lumen-ui/lumen/system"
)

// FrameSurface is a surface descriptor backed by a CPU-accessible RGBA
// framebuffer, as exposed by offscreen and shared-memory windows.
type FrameSurface interface {
	system.Surface

	// RGBA returns the framebuffer to present frames into.
	RGBA() *image.RGBA
}

// Software is a [Renderer] that composites into an RGBA back buffer
// and presents it to a [FrameSurface], if the window exposes one.
// Without a usable surface it still maintains the back buffer, which
// keeps headless windows renderable for tests and screenshots.
type Software struct {

	// Background is the color damage regions are cleared to before
	// drawing. Defaults to white.
	Background color.Color

	surface FrameSurface
	frame   *image.RGBA
	loop    Loop

	// frameCount is the number of Paint calls since creation.
	frameCount int

	disposed bool
}

// NewSoftware returns a new software renderer over the given surfaces
// at the given initial size. The loop may be nil.
func NewSoftware(surfaces *system.RenderSurfaces, size image.Point, loop Loop) *Software {
	sw := &Software{Background: color.White, loop: loop}
	if fs, ok := surfaces.First("image").(FrameSurface); ok {
		sw.surface = fs
	}
	sw.frame = image.NewRGBA(image.Rectangle{Max: size})
	if loop != nil {
		loop.Add(sw)
	}
	return sw
}

// Frame returns the current back buffer.
func (sw *Software) Frame() *image.RGBA { return sw.frame }

// FrameCount returns the number of frames painted since creation.
func (sw *Software) FrameCount() int { return sw.frameCount }

func (sw *Software) Paint(region image.Rectangle) {
	if sw.disposed {
		return
	}
	region = region.Intersect(sw.frame.Bounds())
	if region.Empty() {
		return
	}
	draw.Draw(sw.frame, region, image.NewUniform(sw.Background), image.Point{}, draw.Src)
	sw.present(region)
	sw.frameCount++
}

func (sw *Software) Resized(size image.Point) {
	if sw.disposed || size == sw.frame.Bounds().Size() {
		return
	}
	next := image.NewRGBA(image.Rectangle{Max: size})
	// carry the previous contents over, scaled, so the window shows
	// something sensible until the next paint
	draw.BiLinear.Scale(next, next.Bounds(), sw.frame, sw.frame.Bounds(), draw.Src, nil)
	sw.frame = next
	sw.present(next.Bounds())
}

func (sw *Software) Dispose() {
	if sw.disposed {
		return
	}
	sw.disposed = true
	if sw.loop != nil {
		sw.loop.Remove(sw)
		sw.loop = nil
	}
	sw.surface = nil
}

// present copies the given region of the back buffer to the window surface.
func (sw *Software) present(region image.Rectangle) {
	if sw.surface == nil {
		return
	}
	dst := sw.surface.RGBA()
	if dst == nil {
		return
	}
	draw.Draw(dst, region.Intersect(dst.Bounds()), sw.frame, region.Min, draw.Src)
}

// SoftwareFactory is a [Factory] producing [Software] renderers.
type SoftwareFactory struct{}

func (SoftwareFactory) NewRenderer(surfaces *system.RenderSurfaces, size image.Point, loop Loop) Renderer {
	return NewSoftware(surfaces, size, loop)
}
