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

// ErrorDescriptor is a flat, transport-friendly snapshot of one error
// occurrence together with its resolved transport statuses.
//
// It is intended for structured logging, tracing or message-bus
// propagation, where the consumer wants both the logical identity
// (domain, code) and the concrete statuses without re-running the mapper.
type ErrorDescriptor struct {
	// Domain is the error family, keyed by the category's name.
	Domain string `json:"domain,omitempty"`

	// Code is the raw integer error code within the domain.
	Code int `json:"code"`

	// Message is the translated human-readable message.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means
	// "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer). A value of 0
	// means "not resolved" — gRPC OK never describes a failure here.
	GRPCCode int `json:"grpc_code,omitempty"`
}
