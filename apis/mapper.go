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

import (
	"github.com/eyalz800/maybe/domain"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status-mapping
// rules. It resolves an error family (canonical domain) and raw code into
// transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given domain and code.
	// When no rule matches, implementations must fall back to a non-zero
	// default (typically 500).
	HTTPStatus(d domain.Domain, code int) int

	// GRPCStatus returns the gRPC status code for the given domain and code.
	// When no rule matches, implementations must fall back to codes.Internal.
	GRPCStatus(d domain.Domain, code int) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic for each transport.
	Status(d domain.Domain, code int) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(d domain.Domain, code int) string
}

// Status represents a resolved pair of transport statuses for a single
// error. It is the final output of the mapper and can be written directly
// to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
