// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Element is an input-capable element in the visual tree. The input
// dispatch subsystem identifies elements only by this interface; the
// concrete widget types live outside this package.
type Element interface {

	// Name returns a name for the element, used in diagnostics.
	Name() string
}

// KeyEventRouter handles window-level key routing, such as access key
// activation or tab navigation. Routers are optional collaborators of
// an input root.
type KeyEventRouter interface {

	// ProcessEvent routes the given key event. It returns whether the
	// event was consumed by the router.
	ProcessEvent(e Event) bool
}

// AccessKeyRouter is the window-level router for access key chords
// (e.g., Alt+letter menu activation).
type AccessKeyRouter interface {
	KeyEventRouter
}

// KeyNavRouter is the window-level router for focus navigation keys
// (Tab, arrows).
type KeyNavRouter interface {
	KeyEventRouter
}

// InputRoot is the view of a window coordination root consumed by the
// input dispatch subsystem. It is the entry point for all input coming
// in from the platform, and holds the pointer-over state that drives
// hover and cursor behavior.
type InputRoot interface {

	// AccessKeyHandler returns the access key router for this root,
	// or nil if none was available.
	AccessKeyHandler() KeyEventRouter

	// KeyNavigationHandler returns the keyboard navigation router for
	// this root, or nil if none was available.
	KeyNavigationHandler() KeyEventRouter

	// PointerOverElement returns the element the pointer is currently
	// over, or nil.
	PointerOverElement() Element

	// SetPointerOverElement records the element the pointer is
	// currently over. It is called by the input dispatch subsystem as
	// the pointer moves.
	SetPointerOverElement(el Element)

	// ShowAccessKeys returns whether access key markers are currently shown.
	ShowAccessKeys() bool

	// SetShowAccessKeys sets whether access key markers are shown.
	SetShowAccessKeys(show bool)
}

// Dispatcher is the input manager collaborator: it receives every
// platform input event for a root, verbatim, and routes it through the
// visual tree.
type Dispatcher interface {

	// ProcessEvent dispatches the given event for the given root.
	ProcessEvent(root InputRoot, e Event)
}
