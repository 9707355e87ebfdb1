// Package normalize canonicalizes text before display or comparison
// Pipeline order
// 1 Unicode NFC composition
// 2 Collapse runs of spaces and tabs to one space
// 3 Collapse three or more newlines to two
// 4 Trim surrounding whitespace
// 5 Remove ZWSP, word joiner, BOM and NBSP. ZWNJ and ZWJ are kept, they steer conjunct formation
// 6 Devanagari languages only: chandrabindu becomes anusvara
//
// When step 5 removes anything steps 1-4 run again so the output is a fixed point
package normalize

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"

	"linguaforge/internal/core/registry"
	"linguaforge/internal/core/script"
)

const (
	chandrabindu = '\u0901'
	anusvara     = '\u0902'
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	blankLines   = regexp.MustCompile(`\n{3,}`)

	invisible = rangetable.New(
		'\u00a0', // no-break space
		'\u200b', // zero width space
		'\u2060', // word joiner
		'\ufeff', // byte order mark
	)
)

// transformers keep state between calls, so each chain is pooled
var (
	removePool = sync.Pool{New: func() any { return runes.Remove(runes.In(invisible)) }}
	nasalPool  = sync.Pool{New: func() any {
		return runes.Map(func(r rune) rune {
			if r == chandrabindu {
				return anusvara
			}
			return r
		})
	}}
)

// Normalizer is concurrency safe when used with the pools above
type Normalizer struct{}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s for the language code.
// Unknown codes skip the script specific step
func (n *Normalizer) Normalize(s, code string) string {
	if s == "" {
		return ""
	}

	s = layout(s)

	if stripped := apply(&removePool, s); stripped != s {
		s = layout(stripped)
	}

	if l, ok := registry.Lookup(code); ok && l.Script == script.Devanagari {
		s = apply(&nasalPool, s)
	}
	return s
}

// layout runs steps 1-4
func layout(s string) string {
	s = norm.NFC.String(s)
	s = horizontalWS.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func apply(p *sync.Pool, s string) string {
	tr := p.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	p.Put(tr)
	if err != nil {
		return s
	}
	return out
}
