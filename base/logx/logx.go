// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple leveled logging front end over [log/slog],
// with user-updatable verbosity applied uniformly across the framework.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity level set by the user, applied to all
// logging calls made through this package. Code that generates a lot
// of output should check [UserLevel] before formatting expensive
// messages.
var UserLevel = defaultUserLevel

// shouldPrint returns whether a message at the given level should be printed.
func shouldPrint(level slog.Level) bool {
	return UserLevel <= level
}

// PrintlnDebug prints the given arguments on a line at the [slog.LevelDebug] level.
func PrintlnDebug(a ...any) {
	logPrintln(slog.LevelDebug, a...)
}

// PrintfDebug prints the formatted message at the [slog.LevelDebug] level.
func PrintfDebug(format string, a ...any) {
	logPrintf(slog.LevelDebug, format, a...)
}

// PrintlnInfo prints the given arguments on a line at the [slog.LevelInfo] level.
func PrintlnInfo(a ...any) {
	logPrintln(slog.LevelInfo, a...)
}

// PrintfInfo prints the formatted message at the [slog.LevelInfo] level.
func PrintfInfo(format string, a ...any) {
	logPrintf(slog.LevelInfo, format, a...)
}

// PrintlnWarn prints the given arguments on a line at the [slog.LevelWarn] level.
func PrintlnWarn(a ...any) {
	logPrintln(slog.LevelWarn, a...)
}

// PrintfWarn prints the formatted message at the [slog.LevelWarn] level.
func PrintfWarn(format string, a ...any) {
	logPrintf(slog.LevelWarn, format, a...)
}

// PrintlnError prints the given arguments on a line at the [slog.LevelError] level.
func PrintlnError(a ...any) {
	logPrintln(slog.LevelError, a...)
}

// PrintfError prints the formatted message at the [slog.LevelError] level.
func PrintfError(format string, a ...any) {
	logPrintf(slog.LevelError, format, a...)
}

func logPrintln(level slog.Level, a ...any) {
	if !shouldPrint(level) {
		return
	}
	msg := fmt.Sprintln(a...)
	slog.Log(nil, level, msg[:len(msg)-1])
}

func logPrintf(level slog.Level, format string, a ...any) {
	if !shouldPrint(level) {
		return
	}
	slog.Log(nil, level, fmt.Sprintf(format, a...))
}
