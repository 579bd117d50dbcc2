package extract

import "strings"

// PhraseSet is a list of phrases compiled to lower case once and matched by
// case-insensitive substring containment.
type PhraseSet struct {
	phrases []string
}

// NewPhraseSet compiles phrases for repeated matching. Blank phrases are
// dropped.
func NewPhraseSet(phrases []string) PhraseSet {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return PhraseSet{phrases: out}
}

// Matches reports whether any phrase occurs in line.
func (s PhraseSet) Matches(line string) bool {
	return s.matchesLower(strings.ToLower(line))
}

// Empty reports whether the set has no phrases.
func (s PhraseSet) Empty() bool {
	return len(s.phrases) == 0
}

// matchesLower is Matches for text that is already lower case.
func (s PhraseSet) matchesLower(low string) bool {
	for _, p := range s.phrases {
		if strings.Contains(low, p) {
			return true
		}
	}
	return false
}

// runeSuffix returns line with its first n runes removed. Anchor offsets are
// found on the lowercased line, and lowercasing can change a rune's byte
// width, so byte offsets do not transfer between the two forms; rune counts
// do.
func runeSuffix(line string, n int) string {
	for i := range line {
		if n == 0 {
			return line[i:]
		}
		n--
	}
	return ""
}

// firstLower returns the phrase whose first occurrence in low is left-most,
// with its byte offset. ok is false when no phrase occurs.
func (s PhraseSet) firstLower(low string) (phrase string, offset int, ok bool) {
	offset = -1
	for _, p := range s.phrases {
		if i := strings.Index(low, p); i >= 0 && (offset == -1 || i < offset) {
			phrase, offset = p, i
		}
	}
	return phrase, offset, offset >= 0
}
