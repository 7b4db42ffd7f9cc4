// Copyright (c) 2026, Lumen UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of standard error handling helpers
// on top of the standard library errors package, which it wraps so
// that it can be imported in its place.
package errors

import (
	"errors"
	"runtime"
	"strconv"

	"github.com/lumen-ui/lumen/base/logx"
)

// New returns an error that formats as the given text,
// calling [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target,
// calling [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target,
// calling [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors,
// calling [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Log logs the given error if it is non-nil, with the file and line
// of the caller, and returns it unmodified so that calls can be chained.
func Log(err error) error {
	if err != nil {
		logx.PrintlnError(callerInfo() + " " + err.Error())
	}
	return err
}

// Log1 logs the given error if it is non-nil and returns the given
// value and the error. It is useful for wrapping single-value-and-error
// function calls.
func Log1[T any](v T, err error) T {
	Log(err)
	return v
}

// Must panics with the given error if it is non-nil.
// It is for errors that indicate unrecoverable programmer mistakes.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Ignore1 ignores an error return value and returns only the value.
func Ignore1[T any](v T, err error) T {
	return v
}

// callerInfo returns the file and line of the caller of Log.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return file + ":" + strconv.Itoa(line)
}
