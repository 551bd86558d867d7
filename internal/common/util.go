package common

import (
	"strings"
)

// WipeByteArray overwrites the slice contents with zeros. Used for
// passwords read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeSkill trims and title-cases a skill name so that "python" and
// "Python " collapse to the same value.
func NormalizeSkill(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// SplitCommaList splits a comma-separated string into trimmed, non-empty
// items. Used for the "requisitos" field of job offers.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
