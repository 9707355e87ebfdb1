// Package registry holds the static language table shared by the detector,
// tokenizer and normalizer. The table is built once at init and never mutated
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultCode is the code unknown lookups fall back to
const DefaultCode = "en"

// Language is an immutable registry record
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Script string `json:"script"`
	Family string `json:"family"`
}

// ScriptCount is the number of registered languages written in a script
type ScriptCount struct {
	Script string `json:"script"`
	Count  int    `json:"count"`
}

// byCode maps a language code to its index in languages
var byCode = mustIndex(languages[:])

func mustIndex(ls []Language) map[string]int {
	idx := make(map[string]int, len(ls))
	for i, l := range ls {
		if _, dup := idx[l.Code]; dup {
			panic(fmt.Sprintf("registry: duplicate language code %q", l.Code))
		}
		idx[l.Code] = i
	}
	if _, ok := idx[DefaultCode]; !ok {
		panic("registry: default language " + DefaultCode + " is not registered")
	}
	return idx
}

// Lookup returns the language registered under code
func Lookup(code string) (Language, bool) {
	i, ok := byCode[code]
	if !ok {
		return Language{}, false
	}
	return languages[i], true
}

// Resolve returns the language registered under code, or the default entry
func Resolve(code string) Language {
	if l, ok := Lookup(code); ok {
		return l
	}
	return Default()
}

// Default returns the fallback entry (English)
func Default() Language { return languages[byCode[DefaultCode]] }

// Len reports the number of registered languages
func Len() int { return len(languages) }

// All returns every language in declaration order. The slice is a copy
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages[:])
	return out
}

// ByScript returns the languages written in script (case-insensitive), in declaration order
func ByScript(script string) []Language {
	var out []Language
	for _, l := range languages {
		if strings.EqualFold(l.Script, script) {
			out = append(out, l)
		}
	}
	return out
}

// ByFamily returns the languages of family (case-insensitive), in declaration order
func ByFamily(family string) []Language {
	var out []Language
	for _, l := range languages {
		if strings.EqualFold(l.Family, family) {
			out = append(out, l)
		}
	}
	return out
}

// Scripts returns every registered script with its language count,
// most used first and alphabetical among equals
func Scripts() []ScriptCount {
	counts := map[string]int{}
	for _, l := range languages {
		counts[l.Script]++
	}
	out := make([]ScriptCount, 0, len(counts))
	for s, n := range counts {
		out = append(out, ScriptCount{Script: s, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Script < out[j].Script
	})
	return out
}

// Families returns the distinct language families, sorted
func Families() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range languages {
		if _, ok := seen[l.Family]; ok {
			continue
		}
		seen[l.Family] = struct{}{}
		out = append(out, l.Family)
	}
	sort.Strings(out)
	return out
}
