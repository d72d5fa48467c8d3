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

// Package category defines the error category: the object that gives one
// family of integer error codes a name and a code-to-message translation.
//
// A category is created once per error-code enumeration, lives for the
// process duration in a package-level variable, and is referenced by
// address from every error built out of its codes. Two categories with the
// same name are still distinct — identity is the pointer, not the name.
//
// # Declaring an error-code enumeration
//
// An enumeration is any defined type with underlying type int. One value is
// designated as "success" and translates to the empty message. The binding
// between the enumeration and its category is declared structurally, by
// giving the enumeration type a Category method:
//
//	type myError int
//
//	const (
//		success    myError = iota
//		bad
//		reallyBad
//	)
//
//	var myCategory = category.New("my_category", func(c myError) string {
//		switch c {
//		case success:
//			return category.NoError
//		case bad:
//			return "Something bad happened."
//		case reallyBad:
//			return "Something really bad happened."
//		default:
//			return "Unknown error occurred."
//		}
//	})
//
//	func (myError) Category() *category.Category { return &myCategory }
//
// The method is resolved at compile time: constructing an error from a code
// whose type has no Category method does not compile. There is no runtime
// registration step and no central table.
//
// # Translation contract
//
// Translators must be total, pure and non-allocating: the success code maps
// to category.NoError, every other recognized code maps to a non-empty
// string, and the default branch maps unrecognized codes to a non-empty
// fallback. A translator that could return an empty string for an unknown
// code would silently reclassify unknown failures as success.
package category
