package tokenize

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", " \t\n ", []string{}},
		{"punctuation split", "Hello, world!", []string{"Hello", ",", "world", "!"}},
		{"underscore is word", "snake_case x", []string{"snake_case", "x"}},
		{"digits", "call 911 now", []string{"call", "911", "now"}},
		{"punctuation runs", "wait... what?!", []string{"wait", "...", "what", "?!"}},
		{"devanagari splits at signs", "नमस्ते", []string{"नमस", "्", "त", "े"}},
		{"devanagari vowel signs", "दुनिया", []string{"द", "ु", "न", "ि", "य", "ा"}},
		{"sign runs merge with danda", "मैं हूँ।", []string{"म", "ैं", "ह", "ूँ।"}},
		{"combining accent splits", "cafe\u0301", []string{"cafe", "\u0301"}},
		{"zero width space separates", "foo\u200bbar", []string{"foo", "bar"}},
		{"bom separates", "\ufeffhello", []string{"hello"}},
		{"han per rune", "你好世界", []string{"你", "好", "世", "界"}},
		{"han drops spaces", "你好 世界！", []string{"你", "好", "世", "界", "！"}},
		{"kana", "こんにちは", []string{"こ", "ん", "に", "ち", "は"}},
		{"hangul uses boundaries", "안녕 하세요", []string{"안녕", "하세요"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.in)
			if got == nil {
				t.Fatal("Split returned nil")
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Split(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenize_ExplicitLanguage(t *testing.T) {
	tk := New(nil)

	r := tk.Tokenize("你好世界", "zh")
	if len(r.Tokens) != 4 || r.Language.Code != "zh" {
		t.Fatalf("unexpected result %+v", r)
	}

	r = tk.Tokenize("Hello, world!", "en")
	if !reflect.DeepEqual(r.Tokens, []string{"Hello", ",", "world", "!"}) {
		t.Fatalf("tokens = %q", r.Tokens)
	}
	if r.Text != "Hello, world!" {
		t.Fatalf("text = %q", r.Text)
	}
}

func TestTokenize_UnknownCodeFallsBackWithoutDetection(t *testing.T) {
	r := New(nil).Tokenize("नमस्ते", "xx")
	if r.Language.Code != "en" {
		t.Fatalf("language = %s, want en", r.Language.Code)
	}
	if len(r.Tokens) != 4 {
		t.Fatalf("tokens = %q", r.Tokens)
	}
}

func TestTokenize_AutoDetects(t *testing.T) {
	tk := New(nil)
	cases := []struct{ text, want string }{
		{"नमस्ते दुनिया", "hi"},
		{"こんにちは", "ja"},
		{"Der Hund und die Katze ist nicht da", "de"},
		{"", "en"},
	}
	for _, tc := range cases {
		if got := tk.Tokenize(tc.text, Auto).Language.Code; got != tc.want {
			t.Fatalf("Tokenize(%q, Auto) language = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestTokenize_ScriptIndependentOfLanguage(t *testing.T) {
	// Han text tokenized as English still splits per character
	r := New(nil).Tokenize("你好", "en")
	if !reflect.DeepEqual(r.Tokens, []string{"你", "好"}) {
		t.Fatalf("tokens = %q", r.Tokens)
	}
	// Latin text labelled Chinese uses boundaries
	r = New(nil).Tokenize("ni hao", "zh")
	if !reflect.DeepEqual(r.Tokens, []string{"ni", "hao"}) {
		t.Fatalf("tokens = %q", r.Tokens)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	r := New(nil).Tokenize("", "en")
	if r.Tokens == nil || len(r.Tokens) != 0 {
		t.Fatalf("tokens = %#v, want empty non-nil slice", r.Tokens)
	}
}
