package keywords

import "unicode/utf8"

// Truncate shortens keywords to at most maxBytes bytes without splitting a word.
// The result ends at the last full word that fits. A single word longer than maxBytes is cut on a rune boundary.
func Truncate(keywords string, maxBytes int) string {
	if maxBytes <= 0 || len(keywords) <= maxBytes {
		return keywords
	}

	// The word boundary is right after the cut when the next byte is a space.
	if keywords[maxBytes] == ' ' {
		return trimRightSpaces(keywords[:maxBytes])
	}

	cut := keywords[:maxBytes]
	for i := len(cut) - 1; i >= 0; i-- {
		if cut[i] == ' ' {
			return trimRightSpaces(cut[:i])
		}
	}

	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

func trimRightSpaces(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}
