package translit

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTransliterate_DevanagariToLatin(t *testing.T) {
	tr := New()
	cases := []struct{ in, want string }{
		{"", ""},
		{"क", "ka"},
		{"नमस्ते", "namasatae"},
		{"भारत", "bhaaaraata"},
		{"१२३", "123"},
		{"ॐ abc!", "ॐ abc!"},
	}
	for _, tc := range cases {
		got, err := tr.Transliterate(tc.in, "Devanagari", "Latin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Target != tc.want {
			t.Fatalf("Transliterate(%q) = %q, want %q", tc.in, got.Target, tc.want)
		}
		if got.Source != tc.in {
			t.Fatalf("source = %q", got.Source)
		}
	}
}

func TestTransliterate_ScriptNamesCaseInsensitive(t *testing.T) {
	tr := New()
	got, err := tr.Transliterate("क", "DEVANAGARI", "latin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Target != "ka" || got.SourceScript != "DEVANAGARI" || got.TargetScript != "latin" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestTransliterate_LatinToDevanagari_LongestFirst(t *testing.T) {
	tr := New()
	cases := []struct{ in, want string }{
		{"kha", "ख"},
		{"chha", "छ"},
		{"cha", "च"},
		{"ka", "क"},
		{"Tha", "ठ"},
		{"tha", "थ"},
		{"a", "अ"},
		{"2024", "२०२४"},
	}
	for _, tc := range cases {
		got, err := tr.Transliterate(tc.in, "Latin", "Devanagari")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Target != tc.want {
			t.Fatalf("Transliterate(%q) = %q, want %q", tc.in, got.Target, tc.want)
		}
	}
}

func TestTransliterate_RoundTripRecoversMappedCharacter(t *testing.T) {
	tr := New()
	owner := map[string]string{}
	for _, e := range Reverse() {
		owner[e.From] = e.To
	}
	for _, e := range Forward() {
		if e.To == "" {
			continue
		}
		got := tr.Apply(LatinToDevanagari, e.To)
		// values shared by two characters resolve to the later declaration
		if !strings.Contains(got, owner[e.To]) {
			t.Fatalf("%q -> %q does not contain %q", e.To, got, owner[e.To])
		}
		if owner[e.To] == e.From && !strings.Contains(got, e.From) {
			t.Fatalf("%q -> %q does not recover %q", e.To, got, e.From)
		}
	}
}

func TestReverse_Ordering(t *testing.T) {
	rev := Reverse()
	for i := 1; i < len(rev); i++ {
		if utf8.RuneCountInString(rev[i-1].From) < utf8.RuneCountInString(rev[i].From) {
			t.Fatalf("reverse rules not longest first at %d: %q before %q", i, rev[i-1].From, rev[i].From)
		}
	}
	if rev[0].From != "chha" {
		t.Fatalf("first rule = %q, want chha", rev[0].From)
	}
	seen := map[string]bool{}
	for _, e := range rev {
		if e.From == "" {
			t.Fatal("empty key in reverse table")
		}
		if seen[e.From] {
			t.Fatalf("duplicate reverse key %q", e.From)
		}
		seen[e.From] = true
	}
	// later declarations win for shared values
	for _, e := range rev {
		switch e.From {
		case "aa":
			if e.To != "ा" {
				t.Fatalf("aa -> %q", e.To)
			}
		case "n":
			if e.To != "ँ" {
				t.Fatalf("n -> %q", e.To)
			}
		}
	}
}

func TestTransliterate_Deterministic(t *testing.T) {
	tr := New()
	in := "संस्कृतम् bhaashaa"
	a, _ := tr.Transliterate(in, "Devanagari", "Latin")
	b, _ := tr.Transliterate(in, "Devanagari", "Latin")
	if a != b {
		t.Fatalf("non deterministic: %+v vs %+v", a, b)
	}
	c, _ := tr.Transliterate(in, "Latin", "Devanagari")
	d, _ := tr.Transliterate(in, "Latin", "Devanagari")
	if c != d {
		t.Fatalf("non deterministic: %+v vs %+v", c, d)
	}
}

func TestTransliterate_UnsupportedPair(t *testing.T) {
	tr := New()
	pairs := [][2]string{
		{"Latin", "Bengali"},
		{"Devanagari", "Devanagari"},
		{"latin", "latin"},
		{"", ""},
		{"Tamil", "Latin"},
	}
	for _, p := range pairs {
		_, err := tr.Transliterate("anything", p[0], p[1])
		if err == nil {
			t.Fatalf("%s->%s: expected error", p[0], p[1])
		}
		if !errors.Is(err, ErrUnsupportedPair) {
			t.Fatalf("%s->%s: error %v does not match ErrUnsupportedPair", p[0], p[1], err)
		}
		var upe *UnsupportedPairError
		if !errors.As(err, &upe) || upe.Source != p[0] || upe.Target != p[1] {
			t.Fatalf("%s->%s: unexpected error %#v", p[0], p[1], err)
		}
	}
}

func TestUnsupportedPairError_Message(t *testing.T) {
	err := &UnsupportedPairError{Source: "Latin", Target: "Bengali"}
	want := "transliteration from 'Latin' to 'Bengali' is not supported; supported pairs: Devanagari->Latin, Latin->Devanagari"
	if err.Error() != want {
		t.Fatalf("got %q", err.Error())
	}
}

func TestPair(t *testing.T) {
	p, err := ParsePair("latin", "DEVANAGARI")
	if err != nil || p != LatinToDevanagari {
		t.Fatalf("ParsePair = %v, %v", p, err)
	}
	if DevanagariToLatin.String() != "Devanagari->Latin" {
		t.Fatalf("String = %q", DevanagariToLatin.String())
	}
	if Pair(9).String() != "?->?" {
		t.Fatalf("invalid pair String = %q", Pair(9).String())
	}
	if got := New().Apply(Pair(9), "abc"); got != "abc" {
		t.Fatalf("invalid pair changed text: %q", got)
	}
}

func TestForward_IsACopy(t *testing.T) {
	f := Forward()
	f[0].To = "mutated"
	if Forward()[0].To != "a" {
		t.Fatal("Forward must return a copy")
	}
	if len(f) != len(forwardIndex) {
		t.Fatalf("forward table has duplicate sources: %d entries, %d indexed", len(f), len(forwardIndex))
	}
}
