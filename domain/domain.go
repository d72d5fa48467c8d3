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

package domain

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Domain is the canonical, validated identifier of one error family.
//
// Domains are dot-separated hierarchical identifiers with a small, fixed
// depth. Each segment names a subsystem, component or backend. The mapper
// exploits the hierarchy for longest-prefix-match rules, so
// "storage.pg.pool" inherits rules declared for "storage.pg" unless a more
// specific rule exists.
type Domain string

// MinLength and MaxLength define the allowed length range for a non-empty
// canonical domain.
const (
	// MinLength keeps trivial values like "x" from being treated as
	// meaningful domains. The empty string is still allowed and means
	// "no domain provided".
	MinLength = 3

	// MaxLength is generous enough for four descriptive segments.
	MaxLength = 128
)

const (
	// domainFmt is the canonical pattern: 1 to 4 dot-separated segments,
	// each starting with a lowercase ASCII letter and continuing with
	// lowercase letters, digits or underscore.
	//
	// Matches:    "storage.pg", "auth.jwt.verify", "my_category"
	// Rejects:    "Storage.PG", "storage..pg", "1storage", "a/b"
	//
	// The empty string is handled separately as "optional" and never
	// reaches this pattern.
	domainFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// domainRe is the compiled pattern, precompiled once so repeated
	// validation in rule builders does not pay the compilation cost.
	domainRe = regexp.MustCompile(domainFmt)
)

var (
	// ErrDomainInvalidFormat is returned when a domain does not conform to
	// the canonical pattern.
	ErrDomainInvalidFormat = errors.New("maybe: invalid domain format")
	// ErrDomainInvalidLength is returned when a domain is too short or too long.
	ErrDomainInvalidLength = errors.New("maybe: invalid domain length")
)

// Ensure Domain implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*Domain)(nil)
	_ encoding.TextUnmarshaler = (*Domain)(nil)
)

// Empty is the zero-value domain, meaning "not provided".
var Empty Domain = ""

// Normalize takes an arbitrary string and brings it closer to the canonical
// domain form. Only obvious, non-lossy transformations are applied:
//
//   - trim surrounding spaces;
//   - lowercase;
//   - convert "/" to "." (callers may build paths with slashes);
//   - replace "-" with "_".
//
// It does NOT guarantee validity; callers should still Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates a user-provided string, returning a
// canonical Domain. The empty string parses to Empty without error — this
// is what makes Domain optional.
func Parse(s string) (Domain, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Domain(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level
// constants. Unlike Parse it rejects the empty string: an empty domain in a
// declaration is almost always a programmer error.
func MustParse(s string) Domain {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if d == Empty {
		panic("maybe: empty domain in MustParse")
	}
	return d
}

// FromName projects a category display name onto a Domain, best effort.
// The name is normalized; if the result is not canonical the Empty domain
// is returned, which routing layers treat as "match nothing specific".
// Lossless only for names already written in canonical form.
func FromName(name string) Domain {
	d, err := Parse(name)
	if err != nil {
		return Empty
	}
	return d
}

// Validate checks whether the provided Domain is in canonical form.
// The empty domain is valid here; enforce non-emptiness at call sites that
// need it.
func Validate(d Domain) error {
	if d == Empty {
		return nil
	}
	return validate(string(d))
}

// String returns the canonical string representation of the domain.
func (d Domain) String() string {
	return string(d)
}

// MarshalText implements encoding.TextMarshaler. The empty domain marshals
// to an empty slice so encoders relying on TextMarshaler are not broken.
func (d Domain) MarshalText() ([]byte, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	if d == Empty {
		return []byte{}, nil
	}
	return []byte(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// normalized and validated before assigning; empty or whitespace-only
// input produces Empty.
func (d *Domain) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// validate checks length and format of a non-empty candidate.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrDomainInvalidLength
	}
	if !domainRe.MatchString(s) {
		return ErrDomainInvalidFormat
	}
	return nil
}
