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

// Package segmenttrie implements a segment-aware prefix index for
// dot-separated domain identifiers. It backs the mapper's longest-prefix
// rules: a rule for "storage.pg" applies to "storage.pg.pool" unless a
// deeper rule exists, and "*" matches exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is the prefix index. Each node represents one segment. After build
// the trie is never mutated, so lookups are safe for concurrent use.
type Trie[T any] struct {
	children map[string]*Trie[T]

	// hasVal marks that a rule ends at this node.
	hasVal bool
	val    T

	// pattern is the dotted rule as inserted (may contain "*"), kept so
	// Explain can report which rule matched without rebuilding strings on
	// the lookup path.
	pattern string
}

// ErrInvalidPrefix is returned for prefixes that are empty, contain empty
// or malformed segments, or consist only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix, e.g. "storage.pg" or
// "auth.*.verify". The wildcard "*" matches exactly one segment. At least
// one segment must be non-wildcard — an all-wildcard rule would catch
// everything. Returns ErrInvalidPrefix on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, seg := range segs {
		if !validSegment(seg) {
			return ErrInvalidPrefix
		}
		if seg != "*" {
			concrete = true
		}
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, seg := range segs {
		child, ok := cur.children[seg]
		if !ok {
			child = New[T]()
			cur.children[seg] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the deepest rule whose prefix covers the given dot-separated
// key, exploring both exact and wildcard branches. It returns the rule's
// value on success.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match plus the dotted pattern of the winning rule,
// for diagnostics. The traversal slices the key in place and performs no
// allocation.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := matchState[T]{depth: -1}
	t.walk(key, 0, 0, &best)
	if best.depth < 0 {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// matchState tracks the deepest valued node seen during a walk.
type matchState[T any] struct {
	depth   int
	val     T
	pattern string
}

// walk consumes the segment starting at byte offset off, with depth
// segments already matched, updating best whenever a valued node is passed.
// Keys with segments outside [a-z][a-z0-9_]* terminate the walk early; such
// keys simply match nothing beyond what was already seen.
func (t *Trie[T]) walk(key string, off, depth int, best *matchState[T]) {
	if t.hasVal && depth > best.depth {
		best.depth = depth
		best.val = t.val
		best.pattern = t.pattern
	}
	if off >= len(key) {
		return
	}

	end, ok := segmentEnd(key, off)
	if !ok {
		return
	}
	seg := key[off:end]
	next := end
	if next < len(key) && key[next] == '.' {
		next++
	}

	if child, ok := t.children[seg]; ok {
		child.walk(key, next, depth+1, best)
	}
	if child, ok := t.children["*"]; ok {
		child.walk(key, next, depth+1, best)
	}
}

// segmentEnd scans one key segment beginning at off and returns the index
// just past it. It reports false when the segment is malformed.
func segmentEnd(key string, off int) (int, bool) {
	c := key[off]
	if c < 'a' || c > 'z' {
		return 0, false
	}
	i := off + 1
	for i < len(key) {
		c = key[i]
		if c == '.' {
			break
		}
		if !isWordByte(c) {
			return 0, false
		}
		i++
	}
	return i, true
}

// validSegment reports whether seg is usable in a rule: "*" or a word of
// the form [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
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
		if !isWordByte(seg[i]) {
			return false
		}
	}
	return true
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
