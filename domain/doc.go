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

// Package domain defines the canonical identifier form for error families
// at the transport edge.
//
// A category's display name is free-form (category.New keeps it verbatim).
// Mapper rules and wire payloads, however, need a stable, comparable key.
// Domain is that key: a dot-separated, lowercase identifier such as
//
//   - "storage.pg"
//   - "auth.jwt"
//   - "my_category"
//
// Components that route on error families (the mapper's prefix rules, the
// httpx/grpcx adapters) convert display names through FromName or Parse and
// match on the canonical form. Naming categories in this form to begin with
// makes the projection lossless.
//
// Domain is intentionally optional: the zero value ("") means "not
// provided" and is valid to carry around. Callers that require a non-empty
// canonical domain should call Validate explicitly.
package domain
