// Package tokenize splits text into surface tokens.
//
// Han, Hiragana and Katakana text is split one token per codepoint. Everything
// else is split on whitespace and invisible separators, then at every boundary
// between word and non-word runes. There is no morphological analysis
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"linguaforge/internal/core/detect"
	"linguaforge/internal/core/registry"
	"linguaforge/internal/core/script"
)

// Auto asks Tokenize to detect the language
const Auto = ""

// Result holds the tokens of one text in source order
type Result struct {
	Text     string            `json:"text"`
	Tokens   []string          `json:"tokens"`
	Language registry.Language `json:"language"`
}

// invisible separators split fragments like whitespace does
var invisible = rangetable.New(
	'\u200b', // zero width space
	'\u200c', // zero width non-joiner
	'\u200d', // zero width joiner
	'\u2060', // word joiner
	'\ufeff', // byte order mark
)

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(invisible, r)
}

// Tokenizer is safe for concurrent use
type Tokenizer struct {
	det *detect.Detector
}

// New returns a Tokenizer that resolves Auto through det. A nil det uses detect.New()
func New(det *detect.Detector) *Tokenizer {
	if det == nil {
		det = detect.New()
	}
	return &Tokenizer{det: det}
}

// Tokenize splits text. An explicit code is looked up in the registry and unknown
// codes fall back to English without running detection. Auto runs detection
func (t *Tokenizer) Tokenize(text, code string) Result {
	var lang registry.Language
	if code == Auto {
		lang = t.det.Detect(text).Language
	} else {
		lang = registry.Resolve(code)
	}
	return Result{Text: text, Tokens: Split(text), Language: lang}
}

// Split tokenizes text by its own dominant script, independent of any language.
// The result is never nil
func Split(text string) []string {
	if script.IsCJK(script.Classify(text)) {
		return perRune(text)
	}
	return bySeparator(text)
}

// perRune emits every codepoint except U+0020 as its own token
func perRune(text string) []string {
	out := make([]string, 0, len(text)/3)
	for _, r := range text {
		if r == ' ' {
			continue
		}
		out = append(out, string(r))
	}
	return out
}

func bySeparator(text string) []string {
	out := []string{}
	for _, frag := range strings.FieldsFunc(text, isSeparator) {
		out = appendRuns(out, frag)
	}
	return out
}

// appendRuns appends the maximal runs of word and non-word runes of frag
func appendRuns(out []string, frag string) []string {
	start, inWord := 0, false
	for i, r := range frag {
		w := script.IsWord(r)
		if i > start && w != inWord {
			out = append(out, frag[start:i])
			start = i
		}
		inWord = w
	}
	if start < len(frag) {
		out = append(out, frag[start:])
	}
	return out
}
