// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/chewxy/math32"
)

// baseDPI is the density of a standard (non-hidpi) display in dots per inch.
const baseDPI = float32(96)

// Screen contains the metrics of one physical or logical screen.
type Screen struct {

	// Name is the name of the screen as reported by the platform.
	Name string

	// Geometry is the bounds of the screen in pixels, positioned
	// within the overall virtual screen space.
	Geometry image.Rectangle

	// Scale is the scale factor of the screen: pixels per layout unit.
	Scale float32

	// PhysicalDPI is the physical dots per inch of the screen, for
	// generating true-to-physical-size output.
	PhysicalDPI float32
}

// LogicalDPI returns the dots per inch to use for unit conversion on
// this screen: the base density multiplied by the scale factor, with a
// floor so that a misreporting driver can never collapse layout to zero.
func (sc *Screen) LogicalDPI() float32 {
	return baseDPI * math32.Max(sc.Scale, 0.5)
}

// PixelSize returns the size of the screen in pixels.
func (sc *Screen) PixelSize() image.Point {
	return sc.Geometry.Size()
}
