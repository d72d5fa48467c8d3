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

import (
	"sync"
	"testing"
)

type parseError int

const (
	parseOK parseError = iota
	parseBadToken
	parseBadNumber
)

var parseCategory = New("parser", func(c parseError) string {
	switch c {
	case parseOK:
		return NoError
	case parseBadToken:
		return "unexpected token"
	case parseBadNumber:
		return "malformed number"
	default:
		return "unrecognized parse error"
	}
})

func (parseError) Category() *Category { return &parseCategory }

func TestCategory_NameIsExactAndStable(t *testing.T) {
	c := New("My Exact Name  ", func(parseError) string { return NoError })
	for i := 0; i < 3; i++ {
		if got := c.Name(); got != "My Exact Name  " {
			t.Fatalf("Name() = %q; must return the exact construction string", got)
		}
	}
}

func TestCategory_MessageContract(t *testing.T) {
	if got := parseCategory.Message(int(parseOK)); got != NoError {
		t.Fatalf("success code must translate to the empty message, got %q", got)
	}
	if got := parseCategory.Message(int(parseBadToken)); got != "unexpected token" {
		t.Fatalf("Message(bad_token) = %q", got)
	}
	if got := parseCategory.Message(99); got == "" {
		t.Fatal("unrecognized code must translate to a non-empty fallback")
	}
	if got := parseCategory.Message(99); got == parseCategory.Message(int(parseBadToken)) {
		t.Fatal("fallback text must not collide with a legitimate message")
	}
}

func TestFor_ReturnsIdenticalPointer(t *testing.T) {
	a := For[parseError]()
	b := For[parseError]()
	if a != b {
		t.Fatal("For must resolve to the same category instance on every call")
	}
	if a != &parseCategory {
		t.Fatal("For must return the registered process-lifetime instance")
	}
}

func TestNilCategory_NeverReadsAsSuccess(t *testing.T) {
	var c *Category
	if got := c.Message(0); got == NoError {
		t.Fatal("nil category must not translate any code to the success message")
	}
	if got := c.Name(); got != "" {
		t.Fatalf("nil category name should be empty, got %q", got)
	}
}

func TestNilTranslator_NeverReadsAsSuccess(t *testing.T) {
	c := New[parseError]("degenerate", nil)
	for _, code := range []int{0, 1, -1, 1 << 20} {
		if got := c.Message(code); got == NoError {
			t.Fatalf("unbound category must not report success for code %d", code)
		}
	}
}

func TestCategory_ConcurrentReads(t *testing.T) {
	cat := For[parseError]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5000; j++ {
				_ = cat.Name()
				_ = cat.Message(j % 4)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkCategory_Message(b *testing.B) {
	cat := For[parseError]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = cat.Message(int(parseBadToken))
	}
}
