// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// This file contains the style-side contracts of a [Root] and the
// optional collaborator services it resolves at construction. The
// input, layout, and render views live with their consuming
// subsystems ([events.InputRoot], [layout.Root], [render.Root]).

// StyleNode is an opaque node in the styling resolution chain.
// Concrete node types live in the styling engine.
type StyleNode interface {

	// StyleParent returns the next node up the resolution chain,
	// or nil at the top.
	StyleParent() StyleNode
}

// StyleRoot is the view of a [Root] consumed by the styling subsystem.
// A root has no ancestor element; its style parent is resolved from
// the process-wide global styles instead.
type StyleRoot interface {

	// StyleParent returns the global style scope for this root, or
	// nil when no global styles collaborator was available.
	StyleParent() StyleNode
}

// Styler is the styling engine collaborator. It is optional; without
// one, roots skip the initial style pass.
type Styler interface {

	// ApplyStyle runs a full style pass over the given root's tree.
	ApplyStyle(root StyleRoot)
}

// GlobalStyles is the process-wide style scope collaborator, the
// intentional top of every root's style resolution chain.
type GlobalStyles interface {

	// Scope returns the global style scope node.
	Scope() StyleNode
}
