package domain

import (
	"strings"
	"unicode"
)

// NormalizeName collapses internal whitespace and title-cases a personal
// name. A letter starts a word whenever it follows a non-letter, so
// hyphenated and apostrophized names come out as "Jean-Luc" and "O'Brien".
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		prevLetter := false
		for _, r := range f {
			switch {
			case !unicode.IsLetter(r):
				b.WriteRune(r)
				prevLetter = false
			case prevLetter:
				b.WriteRune(unicode.ToLower(r))
			default:
				b.WriteRune(unicode.ToUpper(r))
				prevLetter = true
			}
		}
	}
	return b.String()
}

// normalizeTags lowercases, trims and deduplicates subject tags,
// preserving first-seen order and dropping empties.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
