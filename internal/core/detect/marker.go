package detect

import "fmt"

// Marker is one of the Latin-script languages scored by marker words
type Marker int

const (
	English Marker = iota
	Spanish
	French
	German
	Portuguese
)

var markerCodes = [...]string{
	English:    "en",
	Spanish:    "es",
	French:     "fr",
	German:     "de",
	Portuguese: "pt",
}

var markerNames = [...]string{
	English:    "English",
	Spanish:    "Spanish",
	French:     "French",
	German:     "German",
	Portuguese: "Portuguese",
}

// markerWords are short function words, each counted at most once per text
var markerWords = [...][]string{
	English:    {"the", "and", "is", "are", "was", "of", "in", "to"},
	Spanish:    {"el", "la", "los", "las", "de", "en", "que", "es"},
	French:     {"le", "la", "les", "de", "du", "et", "est", "une"},
	German:     {"der", "die", "das", "und", "ist", "ich", "ein", "nicht"},
	Portuguese: {"o", "a", "os", "as", "de", "e", "do", "da"},
}

// Markers returns every marker language in scoring order
func Markers() []Marker {
	return []Marker{English, Spanish, French, German, Portuguese}
}

// String returns the language name
func (m Marker) String() string {
	if m >= 0 && int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("Marker(%d)", int(m))
}

// Code returns the registry code of the language, or "" for an invalid marker
func (m Marker) Code() string {
	if m >= 0 && int(m) < len(markerCodes) {
		return markerCodes[m]
	}
	return ""
}

// Words returns a copy of the marker word list
func (m Marker) Words() []string {
	if m < 0 || int(m) >= len(markerWords) {
		return nil
	}
	return append([]string(nil), markerWords[m]...)
}

func (m Marker) base() float64 {
	if m == English {
		return englishBase
	}
	return otherBase
}
