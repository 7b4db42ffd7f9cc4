// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package services provides an explicit service-resolution context
// used to wire optional collaborators into coordination objects at
// construction time. A context is passed in explicitly; code that is
// not handed one falls back to the shared [Default] context, so there
// is exactly one well-defined ambient registry rather than arbitrary
// global state.
package services

import (
	"reflect"
	"sync"
)

// Context is a registry of services keyed by interface type.
// The zero value is not usable; use [New].
type Context struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

// New returns a new empty service context.
func New() *Context {
	return &Context{values: make(map[reflect.Type]any)}
}

var defaultContext = New()

// Default returns the shared process-wide service context, used as the
// fallback when no explicit context is supplied.
func Default() *Context {
	return defaultContext
}

// Register records the given value as the implementation of the
// service type T in the context. Registering again for the same type
// replaces the previous value.
func Register[T any](ctx *Context, v T) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.values[typeFor[T]()] = v
}

// Resolve returns the registered implementation of the service type T
// and whether one was present. Absence is not an error here: many
// services are legitimately optional, and the caller decides how to
// degrade (and what diagnostic to emit).
func Resolve[T any](ctx *Context) (T, bool) {
	ctx.mu.RLock()
	v, ok := ctx.values[typeFor[T]()]
	ctx.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// TypeName returns the name of the service type T, for diagnostics
// about missing services.
func TypeName[T any]() string {
	return typeFor[T]().String()
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
