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

// Package mapper provides deterministic, immutable mappings from an error's
// identity — its family (canonical domain) and raw integer code — to
// transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// The error core is policy-free: a maybe.Error knows its code and category
// but nothing about transports. Boundaries that serve HTTP or gRPC need to
// turn that identity into concrete status codes. Package mapper does this
// in a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - rule-driven — the library ships no built-in codes, so every mapping
//     comes from the caller's options;
//   - prefix-aware — rules can target whole families of categories via
//     dotted domain prefixes;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the (domain, code) pair;
//  2. longest-prefix-match (LPM) on the domain;
//  3. per-domain default;
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: domains are "."-separated, and "*"
// matches exactly one segment. For example:
//
//	WithHTTPPrefix("storage.pg", http.StatusServiceUnavailable)
//	WithHTTPPrefix("storage.*.replica", http.StatusServiceUnavailable)
//
// The more specific prefix wins.
//
// # Usage
//
//	m, err := mapper.New(
//		mapper.WithHTTPDefault("my_category", http.StatusBadRequest),
//		mapper.WithHTTPOverride("my_category", 2, http.StatusConflict),
//		mapper.WithGRPCPrefix("storage", int(codes.Unavailable)),
//	)
//	if err != nil { ... }
//	st := m.Status(domain.FromName(e.Domain()), e.Code())
//
// Domains and prefixes in options are normalized and validated at build
// time; New fails fast on malformed rules rather than mis-routing at
// request time.
package mapper
