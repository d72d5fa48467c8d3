package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_Canonical(t *testing.T) {
	for _, s := range []string{"storage.pg", "auth.jwt.verify", "my_category", "net.dial.tcp.v6"} {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if d.String() != s {
			t.Fatalf("Parse(%q) = %q", s, d)
		}
	}
}

func TestParse_EmptyIsOptional(t *testing.T) {
	d, err := Parse("   ")
	if err != nil {
		t.Fatalf("whitespace must parse to Empty, got error: %v", err)
	}
	if d != Empty {
		t.Fatalf("got %q, want Empty", d)
	}
}

func TestParse_Normalizes(t *testing.T) {
	d, err := Parse("  Storage/PG-Replica  ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if d != Domain("storage.pg_replica") {
		t.Fatalf("got %q", d)
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"1storage", "a..b", ".leading", "trailing.", "a.b.c.d.e", "ab"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q) must fail", s)
		}
	}
}

func TestParse_LengthBounds(t *testing.T) {
	long := strings.Repeat("a", MaxLength+1)
	if _, err := Parse(long); !errors.Is(err, ErrDomainInvalidLength) {
		t.Fatalf("overlong domain: got %v", err)
	}
	if _, err := Parse("ab"); !errors.Is(err, ErrDomainInvalidLength) {
		t.Fatalf("too-short domain: got %v", err)
	}
}

func TestMustParse_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse(\"\") must panic")
		}
	}()
	MustParse("")
}

func TestFromName_BestEffort(t *testing.T) {
	if d := FromName("My Category"); d != Empty {
		t.Fatalf("unparseable name must project to Empty, got %q", d)
	}
	if d := FromName("storage.pg"); d != Domain("storage.pg") {
		t.Fatalf("canonical name must round-trip, got %q", d)
	}
}

func TestTextMarshaling(t *testing.T) {
	d := MustParse("auth.jwt")
	b, err := d.MarshalText()
	if err != nil || string(b) != "auth.jwt" {
		t.Fatalf("MarshalText = (%q, %v)", b, err)
	}

	var back Domain
	if err := back.UnmarshalText([]byte("  AUTH/JWT  ")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if back != d {
		t.Fatalf("round-trip mismatch: %q", back)
	}

	if err := back.UnmarshalText([]byte("..")); err == nil {
		t.Fatal("malformed text must not unmarshal")
	}
}
