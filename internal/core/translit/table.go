package translit

import (
	"sort"
	"unicode/utf8"
)

// Entry is one substitution rule
type Entry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// forward maps Devanagari codepoints to an ITRANS-style Latin spelling, in declaration order
var forward = [...]Entry{
	// independent vowels
	{"अ", "a"}, {"आ", "aa"}, {"इ", "i"}, {"ई", "ii"}, {"उ", "u"}, {"ऊ", "uu"},
	{"ऋ", "ri"}, {"ए", "e"}, {"ऐ", "ai"}, {"ओ", "o"}, {"औ", "au"},
	// vowel signs
	{"ा", "aa"}, {"ि", "i"}, {"ी", "ii"}, {"ु", "u"}, {"ू", "uu"},
	{"ृ", "ri"}, {"े", "e"}, {"ै", "ai"}, {"ो", "o"}, {"ौ", "au"},
	// consonants
	{"क", "ka"}, {"ख", "kha"}, {"ग", "ga"}, {"घ", "gha"}, {"ङ", "nga"},
	{"च", "cha"}, {"छ", "chha"}, {"ज", "ja"}, {"झ", "jha"}, {"ञ", "nya"},
	{"ट", "Ta"}, {"ठ", "Tha"}, {"ड", "Da"}, {"ढ", "Dha"}, {"ण", "Na"},
	{"त", "ta"}, {"थ", "tha"}, {"द", "da"}, {"ध", "dha"}, {"न", "na"},
	{"प", "pa"}, {"फ", "pha"}, {"ब", "ba"}, {"भ", "bha"}, {"म", "ma"},
	{"य", "ya"}, {"र", "ra"}, {"ल", "la"}, {"व", "va"}, {"श", "sha"},
	{"ष", "Sha"}, {"स", "sa"}, {"ह", "ha"},
	// anusvara, visarga, virama, chandrabindu, avagraha
	{"ं", "n"}, {"ः", "h"}, {"्", ""}, {"ँ", "n"}, {"ऽ", "'"},
	// digits
	{"०", "0"}, {"१", "1"}, {"२", "2"}, {"३", "3"}, {"४", "4"},
	{"५", "5"}, {"६", "6"}, {"७", "7"}, {"८", "8"}, {"९", "9"},
}

var (
	forwardIndex = indexForward(forward[:])
	reverse      = invert(forward[:])
)

func indexForward(es []Entry) map[rune]string {
	m := make(map[rune]string, len(es))
	for _, e := range es {
		r, _ := utf8.DecodeRuneInString(e.From)
		m[r] = e.To
	}
	return m
}

// invert builds the Latin to Devanagari rules. Empty values are skipped and a
// later source sharing a value replaces the earlier one in place. Rules are
// ordered longest key first, same-length keys by first appearance
func invert(es []Entry) []Entry {
	var out []Entry
	at := map[string]int{}
	for _, e := range es {
		if e.To == "" {
			continue
		}
		if i, ok := at[e.To]; ok {
			out[i].To = e.From
			continue
		}
		at[e.To] = len(out)
		out = append(out, Entry{From: e.To, To: e.From})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i].From) > utf8.RuneCountInString(out[j].From)
	})
	return out
}

// Forward returns the Devanagari to Latin table in declaration order
func Forward() []Entry { return append([]Entry(nil), forward[:]...) }

// Reverse returns the Latin to Devanagari rules in application order
func Reverse() []Entry { return append([]Entry(nil), reverse...) }
