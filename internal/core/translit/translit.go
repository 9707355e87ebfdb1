// Package translit converts text between Devanagari and Latin.
//
// Devanagari to Latin substitutes codepoint by codepoint and passes unknown
// codepoints through. Latin to Devanagari applies the inverted table as
// sequential substring replacements, longest keys first, so "kha" is consumed
// before "ka" or "a" can match inside it
package translit

import (
	"errors"
	"fmt"
	"strings"
)

// Pair is a supported transliteration direction
type Pair int

const (
	DevanagariToLatin Pair = iota
	LatinToDevanagari
)

const (
	devanagari = "Devanagari"
	latin      = "Latin"
)

var pairScripts = [...][2]string{
	DevanagariToLatin: {devanagari, latin},
	LatinToDevanagari: {latin, devanagari},
}

// SupportedPairs lists every direction in declaration order
func SupportedPairs() []Pair { return []Pair{DevanagariToLatin, LatinToDevanagari} }

// Source returns the canonical source script name
func (p Pair) Source() string { return p.scripts()[0] }

// Target returns the canonical target script name
func (p Pair) Target() string { return p.scripts()[1] }

func (p Pair) scripts() [2]string {
	if p >= 0 && int(p) < len(pairScripts) {
		return pairScripts[p]
	}
	return [2]string{"?", "?"}
}

func (p Pair) String() string { return p.Source() + "->" + p.Target() }

// ErrUnsupportedPair matches every *UnsupportedPairError via errors.Is
var ErrUnsupportedPair = errors.New("translit: unsupported script pair")

// UnsupportedPairError names the requested scripts exactly as given
type UnsupportedPairError struct {
	Source string
	Target string
}

func (e *UnsupportedPairError) Error() string {
	names := make([]string, 0, len(pairScripts))
	for _, p := range SupportedPairs() {
		names = append(names, p.String())
	}
	return fmt.Sprintf("transliteration from '%s' to '%s' is not supported; supported pairs: %s",
		e.Source, e.Target, strings.Join(names, ", "))
}

// Is reports target == ErrUnsupportedPair
func (e *UnsupportedPairError) Is(target error) bool { return target == ErrUnsupportedPair }

// ParsePair matches script names case-insensitively
func ParsePair(source, target string) (Pair, error) {
	for _, p := range SupportedPairs() {
		if strings.EqualFold(source, p.Source()) && strings.EqualFold(target, p.Target()) {
			return p, nil
		}
	}
	return 0, &UnsupportedPairError{Source: source, Target: target}
}

// Result carries the script names as the caller spelled them
type Result struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceScript string `json:"source_script"`
	TargetScript string `json:"target_script"`
}

// Transliterator is stateless and safe for concurrent use
type Transliterator struct{}

// New returns a Transliterator
func New() *Transliterator { return &Transliterator{} }

// Transliterate converts text from one script to another. Any pair other than
// Devanagari<->Latin returns *UnsupportedPairError
func (t *Transliterator) Transliterate(text, source, target string) (Result, error) {
	p, err := ParsePair(source, target)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Source:       text,
		Target:       t.Apply(p, text),
		SourceScript: source,
		TargetScript: target,
	}, nil
}

// Apply runs one direction. An invalid Pair returns text unchanged
func (t *Transliterator) Apply(p Pair, text string) string {
	switch p {
	case DevanagariToLatin:
		return toLatin(text)
	case LatinToDevanagari:
		return toDevanagari(text)
	}
	return text
}

func toLatin(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if s, ok := forwardIndex[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// toDevanagari applies one full replacement pass per rule. Output of an earlier
// pass is visible to later ones, which a single-pass strings.Replacer would not do
func toDevanagari(text string) string {
	for _, e := range reverse {
		if strings.Contains(text, e.From) {
			text = strings.ReplaceAll(text, e.From, e.To)
		}
	}
	return text
}
