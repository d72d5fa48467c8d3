/*
   Copyright 2025 The Maybe Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package maybe provides an allocation-free value-or-error mechanism for
// code that reports failures by returning values instead of panicking.
//
// A fallible operation returns either Error (no useful success payload) or
// Maybe[T] (value or error). Errors carry a plain integer code together
// with a borrowed pointer to the code's category, which translates codes to
// human-readable messages. Categories are bound to error-code enumerations
// at compile time via the category package; see its documentation for how
// to declare an enumeration.
//
// The package imposes no policy: no logging, no retry classification, no
// wrapping. Transport concerns (HTTP/gRPC statuses, wire shapes) live in
// the mapper, httpx, grpcx and adapter subpackages.
package maybe

import (
	"github.com/eyalz800/maybe/category"
)

// Error carries one (code, category) pair. It is a small value type: copy
// it freely. The category is borrowed, never owned — in practice categories
// live in package-level variables, so the reference always outlives the
// error.
//
// Success is a derived property, not stored state: an Error is successful
// iff its category translates its code to the empty message. There is no
// separate boolean that could drift out of sync with the pair.
//
// The zero Error has no category and is defined to be an unknown failure
// (non-empty fallback message). Constructing errors through NewError or
// NewErrorWith is the supported path.
type Error struct {
	// code is the raw underlying value of some error-code enumeration.
	code int

	// cat points at the category responsible for code. Nil only in the
	// zero value, which reads as an unknown failure.
	cat *category.Category
}

// NewError constructs an Error from a typed error code. The category is
// resolved structurally through category.For, so this does not compile for
// an enumeration type that has not declared a Category method.
func NewError[E category.Code](code E) Error {
	return Error{
		code: int(code),
		cat:  category.For[E](),
	}
}

// NewErrorWith constructs an Error from a typed code and an explicit
// category, overriding the code's natural binding. Use it to reuse one
// category across several enumeration types, or to build errors from
// enumerations that carry no Category method of their own — only the
// plain-int constraint applies here.
func NewErrorWith[E category.Enum](code E, cat *category.Category) Error {
	return Error{
		code: int(code),
		cat:  cat,
	}
}

// Code returns the raw integer code.
func (e Error) Code() int {
	return e.code
}

// Category returns the bound category. Nil for the zero Error.
func (e Error) Category() *category.Category {
	return e.cat
}

// Domain returns the bound category's display name. Empty for the zero
// Error. Transport adapters use this to key errors by family on the wire.
func (e Error) Domain() string {
	return e.cat.Name()
}

// Message returns the error message: the category's translation of the
// code. Empty exactly when the error indicates success. The zero Error
// yields the non-empty unknown-error fallback.
func (e Error) Message() string {
	return e.cat.Message(e.code)
}

// Success reports whether the error indicates success, defined as the
// message being empty. Note that Maybe's OK is a different notion: it
// discriminates by which alternative is stored, not by message content.
func (e Error) Success() bool {
	return e.Message() == category.NoError
}

// Error implements the built-in error interface so failures can cross API
// boundaries that speak error. The format is:
//
//	<category>: <message>
//
// A successful Error renders as the empty string; callers normally test
// Success before formatting.
func (e Error) Error() string {
	msg := e.Message()
	if msg == category.NoError {
		return ""
	}
	if name := e.cat.Name(); name != "" {
		return name + ": " + msg
	}
	return msg
}
