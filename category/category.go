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

package category

// NoError is the message of the designated success code. Translators return
// it (the empty string) for exactly one code of their enumeration.
const NoError = ""

// unknownMessage is what a nil or unbound category reports for any code.
// It must be non-empty so that a missing translation can never be mistaken
// for success.
const unknownMessage = "unknown error"

// Enum constrains error-code enumerations to a plain int representation.
//
// Every enumeration used with this library must be a defined type whose
// underlying type is int, with one value designated as "success".
type Enum interface {
	~int
}

// Code is an Enum whose type also declares which category owns it.
//
// The Category method is the registry: it must be defined once, next to the
// enumeration, and must return a pointer to process-lifetime storage
// (a package-level variable holding the result of New). Using an
// enumeration without such a method with maybe.NewError is a compile error.
type Code interface {
	Enum

	// Category returns the category responsible for this enumeration.
	// Implementations must ignore the receiver value: the method is invoked
	// on a default-constructed sentinel purely to locate the category.
	Category() *Category
}

// Translator maps one code of the enumeration E to its message.
//
// Translators must be total (defined for every possible E value, including
// values outside the declared members), pure and non-allocating. They return
// NoError for the success code, a non-empty domain string for every other
// recognized code, and a non-empty fallback for everything else.
type Translator[E Enum] func(E) string

// Category pairs a display name with a code-to-message translation for one
// error domain. It is immutable after construction and therefore safe for
// concurrent use without synchronization.
//
// Categories are used by address: store the result of New in a package-level
// variable and hand out the pointer from the enumeration's Category method.
type Category struct {
	// name is the display name. Returned verbatim by Name; never normalized.
	name string

	// message translates a raw integer code. Kept type-erased so Category
	// itself is not generic and errors can reference any category uniformly.
	message func(int) string
}

// New builds a category from a display name and a typed translator.
// This is the only way to construct a non-degenerate category.
//
// The name is kept exactly as given: Name returns the same string on every
// call. The translator is wrapped so that Message accepts the raw integer
// code and converts it back into the enumeration type before translating.
func New[E Enum](name string, translate Translator[E]) Category {
	if translate == nil {
		// Leave message nil; Message falls back to unknownMessage so the
		// category can never report success for any code.
		return Category{name: name}
	}
	return Category{
		name: name,
		message: func(code int) string {
			return translate(E(code))
		},
	}
}

// Name returns the category's display name. It never fails, never allocates
// and is stable across calls. A nil or zero category has the empty name.
func (c *Category) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Message returns the text for the given raw code.
//
// The empty string is returned if and only if code is the domain's success
// value. A nil or unbound category returns a non-empty fallback for every
// code, so it always reads as failure.
func (c *Category) Message(code int) string {
	if c == nil || c.message == nil {
		return unknownMessage
	}
	return c.message(code)
}

// For returns the category registered for the error-code enumeration E.
//
// The lookup is structural and resolved per instantiation: a sentinel value
// of E is default-constructed and its Category method invoked. Repeated
// calls return the identical pointer, because the method hands out the
// address of process-lifetime storage.
func For[E Code]() *Category {
	var sentinel E
	return sentinel.Category()
}
