package segmenttrie

import (
	"errors"
	"testing"
)

func mustInsert(t *testing.T, tr *Trie[int], prefix string, val int) {
	t.Helper()
	if err := tr.Insert(prefix, val); err != nil {
		t.Fatalf("Insert(%q) error: %v", prefix, err)
	}
}

func TestInsert_RejectsMalformed(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "*", "*.*", "a..b", ".a", "a.", "1a", "A.b", "a b"} {
		if err := tr.Insert(p, 1); !errors.Is(err, ErrInvalidPrefix) {
			t.Fatalf("Insert(%q) = %v, want ErrInvalidPrefix", p, err)
		}
	}
}

func TestMatch_ExactAndDeeper(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage", 1)
	mustInsert(t, tr, "storage.pg", 2)
	mustInsert(t, tr, "storage.pg.connect", 3)

	for _, tc := range []struct {
		key  string
		want int
		ok   bool
	}{
		{"storage", 1, true},
		{"storage.mysql", 1, true},
		{"storage.pg", 2, true},
		{"storage.pg.pool", 2, true},
		{"storage.pg.connect", 3, true},
		{"storage.pg.connect.retry", 3, true},
		{"cache", 0, false},
	} {
		got, ok := tr.Match(tc.key)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Match(%q) = (%d, %v), want (%d, %v)", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatch_SegmentBoundary(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "auth.jwt", 1)

	// String prefix is not segment prefix.
	if _, ok := tr.Match("auth.jwtx"); ok {
		t.Fatal("rules must respect segment boundaries")
	}
	if _, ok := tr.Match("auth.jw"); ok {
		t.Fatal("partial segments must not match")
	}
	if _, ok := tr.Match("auth.jwt.verify"); !ok {
		t.Fatal("deeper keys under the rule must match")
	}
}

func TestMatch_Wildcard(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "auth.*.verify", 1)
	mustInsert(t, tr, "auth.jwt.verify", 2)

	if v, _ := tr.Match("auth.saml.verify"); v != 1 {
		t.Fatalf("wildcard rule should fire, got %d", v)
	}
	if v, _ := tr.Match("auth.jwt.verify"); v != 2 {
		t.Fatalf("exact rule should beat the wildcard, got %d", v)
	}
	// '*' consumes exactly one segment.
	if _, ok := tr.Match("auth.verify"); ok {
		t.Fatal("wildcard must not match zero segments")
	}
	if _, ok := tr.Match("auth.a.b.verify"); ok {
		t.Fatal("wildcard must not span two segments")
	}
}

func TestMatchWithPattern_ReportsWinningRule(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage.pg", 1)
	mustInsert(t, tr, "storage.*.pool", 2)

	_, ok, pat := tr.MatchWithPattern("storage.pg.pool")
	if !ok || pat != "storage.*.pool" {
		t.Fatalf("MatchWithPattern = (ok=%v, pattern=%q), want the deeper rule", ok, pat)
	}

	_, ok, pat = tr.MatchWithPattern("storage.pg.conn")
	if !ok || pat != "storage.pg" {
		t.Fatalf("MatchWithPattern = (ok=%v, pattern=%q)", ok, pat)
	}
}

func TestMatch_MalformedKeyStopsCleanly(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage", 1)

	// The malformed tail terminates the walk, keeping what matched so far.
	if v, ok := tr.Match("storage.BAD"); !ok || v != 1 {
		t.Fatalf("Match = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := tr.Match("BAD"); ok {
		t.Fatal("fully malformed keys must not match")
	}
}

func TestMatch_NilAndEmpty(t *testing.T) {
	var nilTrie *Trie[int]
	if _, ok := nilTrie.Match("storage"); ok {
		t.Fatal("nil trie must match nothing")
	}
	if _, ok := New[int]().Match("storage"); ok {
		t.Fatal("empty trie must match nothing")
	}
	tr := New[int]()
	mustInsert(t, tr, "storage", 1)
	if _, ok := tr.Match(""); ok {
		t.Fatal("empty key must match nothing")
	}
}

func BenchmarkMatch_Deep(b *testing.B) {
	tr := New[int]()
	_ = tr.Insert("a.b.c.d", 1)
	_ = tr.Insert("a.b", 2)
	_ = tr.Insert("a.*.c", 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Match("a.b.c.d.e")
	}
}
