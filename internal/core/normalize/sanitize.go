package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8 bytes, NUL, DEL and C0/C1 controls other than
// '\n', '\r' and '\t'. It is applied to raw input before the pipeline, never inside it.
// Returns s unchanged when nothing needs dropping
func Sanitize(s string) string {
	i := firstDropped(s)
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// firstDropped returns the byte offset of the first rune Sanitize would drop, or -1
func firstDropped(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r, size) {
			return i
		}
		i += size
	}
	return -1
}

func keep(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return false
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r < 0x20, r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	}
	return true
}
