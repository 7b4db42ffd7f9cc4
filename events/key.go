// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Key is a low-level key signal, sent for each press and release of a key.
type Key struct {
	Base

	// Rune is the character generated by the key, if printable.
	Rune rune

	// Chord is the string representation of the full chord, set only
	// for [KeyChord] events (e.g., "Control+S").
	Chord string
}

func (ev *Key) String() string {
	if ev.Typ == KeyChord {
		return fmt.Sprintf("%v{Chord: %v, Time: %v}", ev.Type(), ev.Chord, ev.Time().Format("04:05"))
	}
	return fmt.Sprintf("%v{Rune: %q, Time: %v}", ev.Type(), ev.Rune, ev.Time().Format("04:05"))
}

// NewKey returns a new key event of the given type for the given rune.
func NewKey(typ Types, r rune) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Init()
	ev.Rune = r
	return ev
}

// NewKeyChord returns a new [KeyChord] event for the given chord string.
func NewKeyChord(chord string) *Key {
	ev := &Key{}
	ev.Typ = KeyChord
	ev.SetUnique()
	ev.Init()
	ev.Chord = chord
	return ev
}
