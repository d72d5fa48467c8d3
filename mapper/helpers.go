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

	"github.com/eyalz800/maybe/domain"
	"github.com/eyalz800/maybe/mapper/internal/segmenttrie"
)

// compileTrie validates every prefix rule and builds one trie for a
// transport. The conv function lifts builder ints into the transport's
// value type (identity for HTTP, codes.Code for gRPC).
func compileTrie[T any](rules []prefixRule, transport string, conv func(int) T) (*segmenttrie.Trie[T], error) {
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s domain-prefix %q: %w", transport, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", transport, p, err)
		}
	}
	return t, nil
}

// freezeOverrides copies the builder's exact rules into an immutable map
// keyed by canonical domains, so later mutations of caller-owned values
// cannot affect the mapper.
func freezeOverrides[T any](src map[ruleKey]int, transport string, conv func(int) T) (map[frozenKey]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[frozenKey]T, len(src))
	for k, v := range src {
		d, err := domain.Parse(k.domain)
		if err != nil || d == domain.Empty {
			return nil, fmt.Errorf("mapper: invalid %s override domain %q: %w", transport, k.domain, errOrEmpty(err))
		}
		dst[frozenKey{d, k.code}] = conv(v)
	}
	return dst, nil
}

// freezeDefaults copies the builder's per-domain defaults into an immutable
// map keyed by canonical domains.
func freezeDefaults[T any](src map[string]int, transport string, conv func(int) T) (map[domain.Domain]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[domain.Domain]T, len(src))
	for raw, v := range src {
		d, err := domain.Parse(raw)
		if err != nil || d == domain.Empty {
			return nil, fmt.Errorf("mapper: invalid %s default domain %q: %w", transport, raw, errOrEmpty(err))
		}
		dst[d] = conv(v)
	}
	return dst, nil
}

// normalizePrefix brings a rule prefix to canonical form and validates its
// segments. Wildcard segments ("*") are allowed here but a prefix must
// contain at least one concrete segment.
func normalizePrefix(raw string) (string, error) {
	p := domain.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	concrete := false
	for _, seg := range strings.Split(p, ".") {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			concrete = true
		}
	}
	if !concrete {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is usable in a rule prefix:
// the wildcard "*", or a word of the form [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}

// errOrEmpty substitutes a sentinel message when the only problem is an
// empty domain, which domain.Parse accepts but rules must not.
func errOrEmpty(err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("domain must not be empty")
}
