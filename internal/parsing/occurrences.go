package parsing

import (
	"strings"
)

// CountOccurrences counts whole-word, case-insensitive matches of needle in
// haystack. Both sides are normalized first and the needle is matched as a
// literal phrase with a word boundary at each end, so "java" never matches
// inside "javascript". An empty needle matches nothing.
func CountOccurrences(haystack, needle string) int {
	n := Normalize(needle)
	if n == "" {
		return 0
	}
	h := Normalize(haystack)
	if h == "" {
		return 0
	}
	return countNormalized(h, n)
}

// countNormalized counts non-overlapping, leftmost matches of an
// already-normalized needle in an already-normalized haystack. Normalized
// text is ASCII word characters and single spaces, and the needle starts and
// ends with a word character, so a boundary is the text edge or a non-word
// byte next to the match.
func countNormalized(haystack, needle string) int {
	if needle == "" || haystack == "" {
		return 0
	}
	count := 0
	for i := 0; i+len(needle) <= len(haystack); {
		j := strings.Index(haystack[i:], needle)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(needle)
		if (start == 0 || !isWordByte(haystack[start-1])) && (end == len(haystack) || !isWordByte(haystack[end])) {
			count++
			i = end
			continue
		}
		i = start + 1
	}
	return count
}

// isWordByte matches the ASCII word class [0-9A-Za-z_]
func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ContainsWord reports whether needle occurs at least once as a whole word
func ContainsWord(haystack, needle string) bool {
	return CountOccurrences(haystack, needle) > 0
}
