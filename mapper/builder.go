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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// ruleKey identifies one exact override: a specific code within a specific
// domain. The domain is stored raw here and normalized when the builder is
// frozen.
type ruleKey struct {
	domain string
	code   int
}

// prefixRule is one raw LPM rule, validated and compiled into the segment
// trie by New.
type prefixRule struct {
	// prefix is the dot-separated domain prefix (may contain "*").
	prefix string
	// val is the numeric transport status to apply when this prefix
	// matches. For HTTP this is the final value; gRPC values are stored as
	// int for builder uniformity and typed when freezing.
	val int
}

// builder accumulates user-supplied rules before New freezes them into an
// immutable snapshot.
type builder struct {
	// httpOverride holds exact per-(domain, code) HTTP statuses.
	httpOverride map[ruleKey]int
	// grpcOverride holds exact per-(domain, code) gRPC statuses as ints.
	grpcOverride map[ruleKey]int

	// httpDefaults holds per-domain base HTTP statuses, consulted when no
	// override and no prefix rule applies.
	httpDefaults map[string]int
	// grpcDefaults holds per-domain base gRPC statuses as ints.
	grpcDefaults map[string]int

	// httpPrefixes and grpcPrefixes hold LPM rules, compiled into segment
	// tries when freezing.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// global fallbacks used when nothing matched at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder. There are no library defaults to
// seed: the library predeclares no codes, so every mapping is caller-owned.
func newBuilder() *builder {
	return &builder{
		httpOverride: make(map[ruleKey]int),
		grpcOverride: make(map[ruleKey]int),
		httpDefaults: make(map[string]int),
		grpcDefaults: make(map[string]int),

		// hard fallbacks if the domain was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
