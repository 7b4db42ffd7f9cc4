// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DebugSettingsData is the data type for the debug tracing settings.
type DebugSettingsData struct {

	// EventTrace prints a line for each platform notification a root
	// handles (input, resize, scale, close).
	EventTrace bool `toml:"event-trace"`

	// RenderTrace prints a line for each paint notification forwarded
	// to a renderer.
	RenderTrace bool `toml:"render-trace"`
}

// DebugSettings are the current debug tracing settings. They apply to
// every root in the process.
var DebugSettings = &DebugSettingsData{}

// OpenSettings reads settings from the given TOML file into the given
// settings data.
func OpenSettings(s *DebugSettingsData, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, s)
}

// SaveSettings writes the given settings data to the given TOML file.
func SaveSettings(s *DebugSettingsData, filename string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o666)
}
