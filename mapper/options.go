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

// Option configures the Mapper at build time. All options are applied to an
// internal builder and then frozen into an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets the base HTTP status for every code of the given
// domain. Defaults sit below prefix rules and overrides.
func WithHTTPDefault(domain string, status int) Option {
	return func(b *builder) { b.httpDefaults[domain] = status }
}

// WithGRPCDefault sets the base gRPC status for every code of the given
// domain. Defaults sit below prefix rules and overrides.
func WithGRPCDefault(domain string, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[domain] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for one code within one
// domain. Overrides take precedence over every other rule tier.
func WithHTTPOverride(domain string, code int, status int) Option {
	return func(b *builder) { b.httpOverride[ruleKey{domain, code}] = status }
}

// WithGRPCOverride registers an exact gRPC status for one code within one
// domain. Overrides take precedence over every other rule tier.
func WithGRPCOverride(domain string, code int, grpc int) Option {
	return func(b *builder) { b.grpcOverride[ruleKey{domain, code}] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule evaluated against
// the dot-separated domain. A more specific prefix wins; "*" matches one
// segment. Prefix rules sit between overrides and per-domain defaults.
func WithHTTPPrefix(prefix string, status int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, status}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule evaluated against
// the dot-separated domain. A more specific prefix wins; "*" matches one
// segment. Prefix rules sit between overrides and per-domain defaults.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, grpc}) }
}
