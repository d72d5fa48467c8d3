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

package maybe

import (
	"github.com/eyalz800/maybe/category"
)

// Maybe holds exactly one of a success value of type T or an Error. The
// active alternative is chosen at construction and never changes; there is
// no safe in-place switch between alternatives, only whole-object
// replacement.
//
// The container performs no allocation of its own and the accessors are a
// single branch each. Callers gate every Value/Take/Err call behind OK:
//
//	if result := foo(); result.OK() {
//		use(result.Value())
//	} else {
//		log(result.Err().Message())
//	}
//
// The zero Maybe reads as holding the zero Error (an unknown failure).
type Maybe[T any] struct {
	value T
	err   Error

	// ok is the tag: true when the value alternative is active.
	ok bool
}

// OK constructs a Maybe holding the success value v.
func OK[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Fail constructs a Maybe holding the given Error.
//
// The tag, not the message, decides what the container reports: a Maybe
// built from an Error whose code is the success code still holds the error
// alternative and reads false from OK. Error.Success and Maybe.OK are
// deliberately distinct notions of success.
func Fail[T any](e Error) Maybe[T] {
	return Maybe[T]{err: e}
}

// FailCode constructs a Maybe holding an Error built from the typed code,
// resolving the category exactly as NewError does.
func FailCode[T any, E category.Code](code E) Maybe[T] {
	return Maybe[T]{err: NewError(code)}
}

// OK reports whether the value alternative is active. This is a pure tag
// check; it never consults the stored error's message.
func (m Maybe[T]) OK() bool {
	return m.ok
}

// Value returns the stored value.
//
// The value alternative must be active: calling Value on an error result is
// a contract violation and panics. Test OK first.
func (m Maybe[T]) Value() T {
	if !m.ok {
		panic("maybe: Value called on an error result")
	}
	return m.value
}

// Take extracts the stored value, leaving the zero value of T behind, so a
// moved-out value is observed exactly once. Like Value, it panics when the
// error alternative is active.
func (m *Maybe[T]) Take() T {
	if !m.ok {
		panic("maybe: Take called on an error result")
	}
	v := m.value
	var zero T
	m.value = zero
	return v
}

// Err returns the stored Error by value.
//
// The error alternative must be active: calling Err on a value result is a
// contract violation and panics. Test OK first.
func (m Maybe[T]) Err() Error {
	if m.ok {
		panic("maybe: Err called on a value result")
	}
	return m.err
}

// Unwrap projects the container onto Go's conventional (value, error) pair:
// (v, nil) when the value alternative is active, (zero, Error) otherwise.
// The returned error is non-nil whenever the error alternative is active,
// even if the stored Error's own message would read as success.
func (m Maybe[T]) Unwrap() (T, error) {
	if m.ok {
		return m.value, nil
	}
	var zero T
	return zero, m.err
}
