// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured, registered on specific objects.
type Listeners map[Types][]func(e Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a listener for the given type.
func (ls *Listeners) Add(typ Types, fun func(e Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all listeners for the given event, in reverse order of
// addition so that the last listener added is the first called, and
// stops when the event is marked as Handled. This gives a natural
// override behavior without priority machinery.
func (ls *Listeners) Call(e Event) {
	if e.IsHandled() {
		return
	}
	fns := (*ls)[e.Type()]
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i](e)
		if e.IsHandled() {
			break
		}
	}
}
