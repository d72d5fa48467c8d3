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

// ErrorView is a minimal, serializable representation of an error.
//
// This is not the concrete error type used internally — it is the shape we
// are comfortable exposing over the wire or logging. Keeping it here lets
// both the HTTP and gRPC adapters share the same struct.
type ErrorView struct {
	// Domain is the error family, keyed by the category's name.
	Domain string `json:"domain,omitempty"`

	// Code is the raw integer error code within the domain.
	Code int `json:"code"`

	// Message is the translated human-readable message.
	Message string `json:"message,omitempty"`
}
