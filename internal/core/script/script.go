// Package script classifies text by Unicode block ownership.
//
// The range table is scanned in declaration order and the first match wins, so
// earlier entries shadow later overlapping ones. New blocks are only ever appended.
package script

import "unicode"

// Script names as reported by Classify
const (
	Unknown    = "Unknown"
	Latin      = "Latin"
	Devanagari = "Devanagari"
	Bengali    = "Bengali"
	Gurmukhi   = "Gurmukhi"
	Gujarati   = "Gujarati"
	Odia       = "Odia"
	Tamil      = "Tamil"
	Telugu     = "Telugu"
	Kannada    = "Kannada"
	Malayalam  = "Malayalam"
	Sinhala    = "Sinhala"
	Thai       = "Thai"
	Lao        = "Lao"
	Tibetan    = "Tibetan"
	Myanmar    = "Myanmar"
	Georgian   = "Georgian"
	Hangul     = "Hangul"
	Cherokee   = "Cherokee"
	Tagalog    = "Tagalog"
	Mongolian  = "Mongolian"
	Hiragana   = "Hiragana"
	Katakana   = "Katakana"
	CJK        = "CJK"
	Arabic     = "Arabic"
	Hebrew     = "Hebrew"
	Cyrillic   = "Cyrillic"
	Greek      = "Greek"
	Armenian   = "Armenian"
	Ethiopic   = "Ethiopic"
	Khmer      = "Khmer"
	OlChiki    = "Ol Chiki"
)

// Range is an inclusive codepoint interval owned by one script
type Range struct {
	Lo, Hi rune
	Script string
}

// Contains reports whether r falls inside the range
func (g Range) Contains(r rune) bool { return r >= g.Lo && r <= g.Hi }

var ranges = [...]Range{
	{0x0041, 0x007A, Latin},
	{0x00C0, 0x024F, Latin},
	{0x0900, 0x097F, Devanagari},
	{0x0980, 0x09FF, Bengali},
	{0x0A00, 0x0A7F, Gurmukhi},
	{0x0A80, 0x0AFF, Gujarati},
	{0x0B00, 0x0B7F, Odia},
	{0x0B80, 0x0BFF, Tamil},
	{0x0C00, 0x0C7F, Telugu},
	{0x0C80, 0x0CFF, Kannada},
	{0x0D00, 0x0D7F, Malayalam},
	{0x0D80, 0x0DFF, Sinhala},
	{0x0E00, 0x0E7F, Thai},
	{0x0E80, 0x0EFF, Lao},
	{0x0F00, 0x0FFF, Tibetan},
	{0x1000, 0x109F, Myanmar},
	{0x10A0, 0x10FF, Georgian},
	{0x1100, 0x11FF, Hangul},
	{0x13A0, 0x13FF, Cherokee},
	{0x1700, 0x171F, Tagalog},
	{0x1800, 0x18AF, Mongolian},
	{0x3040, 0x309F, Hiragana},
	{0x30A0, 0x30FF, Katakana},
	{0x3400, 0x4DBF, CJK},
	{0x4E00, 0x9FFF, CJK},
	{0x0600, 0x06FF, Arabic},
	{0x0590, 0x05FF, Hebrew},
	{0x0400, 0x04FF, Cyrillic},
	{0x0370, 0x03FF, Greek},

	// appended blocks
	{0xAC00, 0xD7AF, Hangul},
	{0x0530, 0x058F, Armenian},
	{0x1200, 0x137F, Ethiopic},
	{0x1780, 0x17FF, Khmer},
	{0x1C50, 0x1C7F, OlChiki},
}

// names holds each script once, in first-declaration order
var names = func() []string {
	seen := map[string]bool{}
	var out []string
	for _, g := range ranges {
		if !seen[g.Script] {
			seen[g.Script] = true
			out = append(out, g.Script)
		}
	}
	return out
}()

// Ranges returns a copy of the range table in scan order
func Ranges() []Range {
	out := make([]Range, len(ranges))
	copy(out, ranges[:])
	return out
}

// Names returns the distinct script names of the range table in declaration order
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Known reports whether name is a script of the range table
func Known(name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Of returns the script owning r. ok is false when no range matches
func Of(r rune) (name string, ok bool) {
	for _, g := range ranges {
		if g.Contains(r) {
			return g.Script, true
		}
	}
	return "", false
}

// Count is the number of codepoints of a text attributed to one script
type Count struct {
	Script string `json:"script"`
	Count  int    `json:"count"`
}

// Counts tallies the codepoints of text per script, in first-seen order.
// Codepoints outside every range are not counted
func Counts(text string) []Count {
	var out []Count
	idx := map[string]int{}
	for _, r := range text {
		name, ok := Of(r)
		if !ok {
			continue
		}
		i, seen := idx[name]
		if !seen {
			i = len(out)
			idx[name] = i
			out = append(out, Count{Script: name})
		}
		out[i].Count++
	}
	return out
}

// Classify returns the dominant script of text, or Unknown when no codepoint matches.
// Ties go to the script encountered first in text
func Classify(text string) string {
	best, max := Unknown, 0
	for _, c := range Counts(text) {
		if c.Count > max {
			best, max = c.Script, c.Count
		}
	}
	return best
}

// IsCJK reports whether name is one of the per-character segmented scripts
func IsCJK(name string) bool {
	switch name {
	case CJK, Hiragana, Katakana:
		return true
	}
	return false
}

// IsWord reports whether r is a word rune: a letter, a number or '_'.
// Combining marks are not word runes, so Brahmic vowel signs and virama
// split from their consonant
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
