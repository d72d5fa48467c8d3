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
	"fmt"
	"strings"

	"github.com/eyalz800/maybe/apis"
	"github.com/eyalz800/maybe/domain"
	"github.com/eyalz800/maybe/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared
// references to user-provided structures remain.
//
// Build process:
//
//  1. Apply user-provided options (defaults, overrides, prefix rules).
//  2. Normalize and validate every domain and prefix (via the domain
//     package) so malformed rules fail here, not at request time.
//  3. Compile the prefix rules into segment tries supporting
//     longest-prefix-match with '*' as a single-segment wildcard.
//  4. Freeze all maps into fresh copies keyed by canonical domains.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := compileTrie[int](b.httpPrefixes, "HTTP", func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := compileTrie[codes.Code](b.grpcPrefixes, "gRPC", func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	m := &mapper{
		httpTrie: httpTrie,
		grpcTrie: grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	if m.httpOverride, err = freezeOverrides(b.httpOverride, "HTTP", func(v int) int { return v }); err != nil {
		return nil, err
	}
	if m.grpcOverride, err = freezeOverrides(b.grpcOverride, "gRPC", func(v int) codes.Code { return codes.Code(v) }); err != nil {
		return nil, err
	}
	if m.httpDefault, err = freezeDefaults(b.httpDefaults, "HTTP", func(v int) int { return v }); err != nil {
		return nil, err
	}
	if m.grpcDefault, err = freezeDefaults(b.grpcDefaults, "gRPC", func(v int) codes.Code { return codes.Code(v) }); err != nil {
		return nil, err
	}

	return m, nil
}

// frozenKey is the canonical form of ruleKey, produced when freezing.
type frozenKey struct {
	domain domain.Domain
	code   int
}

// mapper is the immutable implementation behind apis.Mapper. It combines
// exact (domain, code) overrides, domain-prefix tries and per-domain
// defaults. Lookups are O(domain depth) and safe for concurrent use once
// constructed.
type mapper struct {
	// httpOverride and grpcOverride hold exact statuses for specific
	// (domain, code) pairs. These take precedence over everything else.
	httpOverride map[frozenKey]int
	grpcOverride map[frozenKey]codes.Code

	// httpTrie and grpcTrie resolve statuses by longest-prefix-match over
	// the dotted domain ("*" matches one segment).
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	// httpDefault and grpcDefault hold the base status for a whole domain,
	// consulted when neither an override nor a prefix rule applies.
	httpDefault map[domain.Domain]int
	grpcDefault map[domain.Domain]codes.Code

	// fallbackHTTP and fallbackGRPC apply when the domain was never
	// mentioned in any rule. HTTP must never be zero.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given domain and code.
//
// Resolution order (highest to lowest):
//  1. exact (domain, code) override;
//  2. longest-prefix-match rule on the domain;
//  3. per-domain default;
//  4. global fallback (500).
func (m *mapper) HTTPStatus(d domain.Domain, code int) int {
	if v, ok := m.httpOverride[frozenKey{d, code}]; ok {
		return v
	}
	if v, ok := m.httpTrie.Match(string(d)); ok {
		return v
	}
	if v, ok := m.httpDefault[d]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given domain and code, with the
// same precedence as HTTPStatus and codes.Internal as the fallback.
func (m *mapper) GRPCStatus(d domain.Domain, code int) codes.Code {
	if v, ok := m.grpcOverride[frozenKey{d, code}]; ok {
		return v
	}
	if v, ok := m.grpcTrie.Match(string(d)); ok {
		return v
	}
	if v, ok := m.grpcDefault[d]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports with the same inputs, keeping HTTP and
// gRPC decisions consistent for a single logical error.
func (m *mapper) Status(d domain.Domain, code int) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(d, code),
		GRPC: m.GRPCStatus(d, code),
	}
}

// Explain produces a textual trace of how the mapper resolved both statuses
// for a particular (domain, code) pair. It is a diagnostic tool: it shows
// which tier matched (override, prefix, default or fallback) and, for
// prefix matches, which pattern won.
//
// Example output:
//
//	domain="storage.pg.pool" code=3
//	http: source=prefix pattern="storage.pg" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
func (m *mapper) Explain(d domain.Domain, code int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "domain=%q code=%d\n", d, code)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(d, code))
	_, _ = fmt.Fprint(&b, m.explainGRPC(d, code))
	return b.String()
}

// explainHTTP renders the tier and value the HTTP resolution would use.
func (m *mapper) explainHTTP(d domain.Domain, code int) string {
	if v, ok := m.httpOverride[frozenKey{d, code}]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(string(d)); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}
	if v, ok := m.httpDefault[d]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC renders the tier and value the gRPC resolution would use.
func (m *mapper) explainGRPC(d domain.Domain, code int) string {
	if v, ok := m.grpcOverride[frozenKey{d, code}]; ok {
		return fmt.Sprintf("grpc: source=override -> %s", grpcName(v))
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(string(d)); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, grpcName(v))
	}
	if v, ok := m.grpcDefault[d]; ok {
		return fmt.Sprintf("grpc: source=default -> %s", grpcName(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
}

// grpcName formats a gRPC code as NAME(number) for Explain output.
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
