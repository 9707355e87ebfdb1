// Package detect ranks candidate languages for a text.
//
// Non-Latin scripts resolve to a single anchor language. Latin text is scored
// against five marker-word lists. Confidences are decision heuristics, not
// calibrated probabilities
package detect

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"linguaforge/internal/core/registry"
	"linguaforge/internal/core/script"
)

const (
	// AnchorConfidence is reported for text in a script with an anchor language
	AnchorConfidence = 0.90
	// FallbackConfidence is reported for text whose script has no anchor
	FallbackConfidence = 0.30

	englishBase  = 0.40
	otherBase    = 0.05
	markerWeight = 0.08
	maxScore     = 0.99
)

// anchors maps a script to the one language it implies
var anchors = map[string]string{
	script.Devanagari: "hi",
	script.Bengali:    "bn",
	script.Gurmukhi:   "pa",
	script.Gujarati:   "gu",
	script.Tamil:      "ta",
	script.Telugu:     "te",
	script.Kannada:    "kn",
	script.Malayalam:  "ml",
	script.Odia:       "or",
	script.Sinhala:    "si",
	script.Thai:       "th",
	script.Lao:        "lo",
	script.Myanmar:    "my",
	script.Tibetan:    "bo",
	script.Georgian:   "ka",
	script.Hangul:     "ko",
	script.Hiragana:   "ja",
	script.Katakana:   "ja",
	script.CJK:        "zh",
	script.Arabic:     "ar",
	script.Hebrew:     "he",
	script.Cyrillic:   "ru",
	script.Greek:      "el",
	script.Armenian:   "hy",
	script.Ethiopic:   "am",
	script.Khmer:      "km",
	script.OlChiki:    "sat",
}

// AnchorFor returns the anchor language code of a script
func AnchorFor(scriptName string) (string, bool) {
	code, ok := anchors[scriptName]
	return code, ok
}

// Result is one ranked candidate
type Result struct {
	Text       string            `json:"text"`
	Language   registry.Language `json:"language"`
	Confidence float64           `json:"confidence"`
}

// casers are not safe for concurrent use
var lowerPool = sync.Pool{New: func() any { c := cases.Lower(language.Und); return &c }}

func lower(s string) string {
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	return c.String(s)
}

// Detector is stateless and safe for concurrent use
type Detector struct{}

// New returns a Detector
func New() *Detector { return &Detector{} }

// Detect returns the best candidate for text
func (d *Detector) Detect(text string) Result {
	return d.DetectMultiple(text, 1)[0]
}

// DetectMultiple returns up to topK candidates ordered by descending confidence.
// topK below 1 is treated as 1. Candidates with equal confidence keep scoring order
func (d *Detector) DetectMultiple(text string, topK int) []Result {
	if topK < 1 {
		topK = 1
	}
	out := d.candidates(text)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > topK {
		out = out[:topK]
	}
	return out
}

func (d *Detector) candidates(text string) []Result {
	s := script.Classify(text)
	if code, ok := anchors[s]; ok {
		return []Result{{Text: text, Language: registry.Resolve(code), Confidence: AnchorConfidence}}
	}
	if s != script.Latin {
		return []Result{{Text: text, Language: registry.Default(), Confidence: FallbackConfidence}}
	}

	scores := Scores(text)
	out := make([]Result, 0, len(scores))
	for _, m := range Markers() {
		out = append(out, Result{Text: text, Language: registry.Resolve(m.Code()), Confidence: scores[m]})
	}
	return out
}

// Scores runs the marker-word heuristic on text regardless of its script.
// Scores are normalized by their sum and capped at 0.99
func Scores(text string) map[Marker]float64 {
	words := wordSet(lower(text))

	raw := make(map[Marker]float64, len(markerWords))
	total := 0.0
	for _, m := range Markers() {
		s := m.base()
		for _, w := range markerWords[m] {
			if _, ok := words[w]; ok {
				s += markerWeight
			}
		}
		raw[m] = s
		total += s
	}
	if total == 0 {
		total = 1.0
	}
	for m, s := range raw {
		raw[m] = min(s/total, maxScore)
	}
	return raw
}

// wordSet returns the distinct maximal runs of word runes in s
func wordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.FieldsFunc(s, func(r rune) bool { return !script.IsWord(r) }) {
		set[w] = struct{}{}
	}
	return set
}
