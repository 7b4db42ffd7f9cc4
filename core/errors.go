// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "fmt"

// ConstructionError is the fatal error returned when a coordination
// root cannot be constructed, such as when the mandatory platform
// window is absent. It indicates a programmer error: no usable root
// exists when it is returned.
type ConstructionError struct {

	// Missing names the mandatory collaborator that was absent.
	Missing string
}

func (e *ConstructionError) Error() string {
	return "core: cannot construct root: missing " + e.Missing
}

// StructuralError is the fatal error returned when a root is placed
// where it cannot go in a visual tree. Roots are always tree tops,
// never tree members.
type StructuralError struct {

	// Type is the name of the offending type.
	Type string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("core: %s is a window root and cannot be attached as a child of another element", e.Type)
}
