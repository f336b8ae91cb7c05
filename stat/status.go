// Copyright 2016 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stat defines the status codes shared by all knife packages and
// the error type that carries them to the foreign-callable boundary
package stat

import "fmt"

// Code is a knife status code. Zero is success; anything else aborts the
// affected partition.
type Code int

const (
	Success      Code = iota // no error
	Null                     // required object was absent
	ArrayBound               // index or dimension inconsistent with held data
	NotFound                 // connectivity query had no answer
	Inconsistent             // caller-supplied dimension disagrees with internal state
	Memory                   // allocation failed
	FileError                // I/O failure at a file boundary
	DivZero                  // geometric degeneracy
	Implement                // path not implemented
	Failure                  // generic fallback
)

// String returns the name of a status code
func (o Code) String() string {
	switch o {
	case Success:
		return "success"
	case Null:
		return "null"
	case ArrayBound:
		return "array_bound"
	case NotFound:
		return "not_found"
	case Inconsistent:
		return "inconsistent"
	case Memory:
		return "memory"
	case FileError:
		return "file_error"
	case DivZero:
		return "div_zero"
	case Implement:
		return "implement"
	}
	return "failure"
}

// Error carries a status code together with a message
type Error struct {
	Code Code   // status code
	Msg  string // message
}

// Error implements the error interface
func (o *Error) Error() string {
	return o.Code.String() + ": " + o.Msg
}

// Err creates a new coded error
func Err(code Code, msg string, prm ...interface{}) error {
	return &Error{code, fmt.Sprintf(msg, prm...)}
}

// CodeOf extracts the status code held by err. A nil error maps to
// Success; an error without a code maps to Failure.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return Failure
}
