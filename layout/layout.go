// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout defines the contracts between window coordination
// roots and the layout subsystem. The layout algorithm itself lives
// outside this module; roots only trigger passes and invalidate
// measure state through these interfaces.
package layout

// Manager is the process-wide layout manager collaborator. A root
// invokes it synchronously when its client size changes.
type Manager interface {

	// ExecuteLayoutPass measures and arranges every tree with invalid
	// layout state, running to completion before returning.
	ExecuteLayoutPass()
}

// Invalidator is implemented by every layout-participating element.
type Invalidator interface {

	// InvalidateMeasure marks the element's measured size as invalid,
	// so the next layout pass re-measures it. It does not itself
	// trigger a pass.
	InvalidateMeasure()
}

// Walker is implemented by element trees that can enumerate their
// layout-participating members. Visit order is unspecified.
type Walker interface {

	// WalkLayout calls visit for the element itself and every
	// layout-participating descendant.
	WalkLayout(visit func(el Invalidator))
}

// Root is the view of a window coordination root consumed by the
// layout subsystem: the top of a layout tree, with no parent
// constraints other than those reported here.
type Root interface {
	Invalidator

	// LayoutSize returns the root's current layout width and height,
	// which mirror the window client size.
	LayoutSize() (width, height float32)

	// MaxClientSize returns the maximum permissible size of the root.
	// Window roots are unbounded.
	MaxClientSize() (width, height float32)

	// LayoutScale returns the scale factor mapping layout units to
	// pixels on the root's window.
	LayoutScale() float32
}
