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

// Package apis defines the public contracts between the error core and the
// transport edge.
//
// The goal is to provide small, composable interfaces that the adapter
// packages (httpx, grpcx) can target without importing the concrete error
// implementation. Concrete error types implement these interfaces; callers
// should not rely on concrete types.
//
// This package must remain lightweight: interfaces and very small view
// types only, no heavy dependencies beyond the gRPC code enum.
package apis
