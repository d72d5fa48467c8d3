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

package apis

// CodedError represents an error that exposes its raw integer code.
//
// Codes are plain integers, the underlying values of some error-code
// enumeration. Their meaning is entirely relative to the error's domain:
// code 2 in "storage.pg" and code 2 in "auth.jwt" are unrelated. Adapters
// therefore never act on a code alone — they pair it with the domain.
type CodedError interface {
	error

	// Code returns the raw integer error code.
	Code() int
}

// DomainError represents an error that knows which error family it belongs
// to, identified by the family's category name.
//
// Having a separate interface lets adapters degrade gracefully: an error
// that exposes only a code can still be routed on the fallback path.
type DomainError interface {
	error

	// Domain returns the owning category's display name. May be empty when
	// the error is not bound to a category.
	Domain() string
}

// DescribedError is the full contract the transport adapters route on:
// code, domain and the translated human-readable message.
//
// maybe.Error implements DescribedError; so can any foreign error type that
// wants to flow through the same HTTP/gRPC edge.
type DescribedError interface {
	error

	// Code returns the raw integer error code.
	Code() int

	// Domain returns the owning category's display name.
	Domain() string

	// Message returns the translated message. Empty indicates success and
	// should never reach an adapter; adapters treat it as internal.
	Message() string
}
