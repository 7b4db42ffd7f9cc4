// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "sync"

// ExitFunc is the registration token for one exit hook added to a
// [Lifecycle]. It is returned by AddExitFunc and identifies the hook
// for removal.
type ExitFunc struct {
	fun func()
}

// Lifecycle is the process-wide application lifecycle collaborator.
// It notifies registered hooks when the application is about to exit,
// which is distinct from any individual window being closed.
type Lifecycle interface {

	// AddExitFunc registers the given function to be called when the
	// application exits, returning the token identifying the registration.
	AddExitFunc(fun func()) *ExitFunc

	// RemoveExitFunc unregisters the given exit hook. It is a no-op
	// for a nil token or one that was never (or is no longer) registered.
	RemoveExitFunc(tok *ExitFunc)
}

// StdLifecycle is the standard [Lifecycle] implementation, suitable
// for registration as the process-wide lifecycle service.
type StdLifecycle struct {
	mu    sync.Mutex
	hooks []*ExitFunc
}

// NewStdLifecycle returns a new [StdLifecycle].
func NewStdLifecycle() *StdLifecycle {
	return &StdLifecycle{}
}

func (lc *StdLifecycle) AddExitFunc(fun func()) *ExitFunc {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	tok := &ExitFunc{fun: fun}
	lc.hooks = append(lc.hooks, tok)
	return tok
}

func (lc *StdLifecycle) RemoveExitFunc(tok *ExitFunc) {
	if tok == nil {
		return
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	for i, h := range lc.hooks {
		if h == tok {
			lc.hooks = append(lc.hooks[:i], lc.hooks[i+1:]...)
			return
		}
	}
}

// Exit calls every registered exit hook, in order of registration.
// It is called by the application driver when the process is about to
// quit.
func (lc *StdLifecycle) Exit() {
	lc.mu.Lock()
	hooks := make([]*ExitFunc, len(lc.hooks))
	copy(hooks, lc.hooks)
	lc.mu.Unlock()
	for _, h := range hooks {
		h.fun()
	}
}
