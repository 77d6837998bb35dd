// Package parsing provides the text primitives every scorer is built on:
// normalization, whole-word occurrence counting and resume flattening.
package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes text for comparison: accents are folded, the text
// is lower-cased, everything outside [A-Za-z0-9_] and whitespace is dropped,
// whitespace runs collapse to one space and the result is trimmed.
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	folded := foldAccents(text)
	lower := strings.ToLower(folded)
	stripped := nonWordRe.ReplaceAllString(lower, "")
	collapsed := whitespaceRe.ReplaceAllString(stripped, " ")

	return strings.TrimSpace(collapsed)
}

// foldAccents removes combining marks so "Café" compares equal to "Cafe"
func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}

// NormalizeAll normalizes every entry and drops the ones that become empty
func NormalizeAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if n := Normalize(item); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// UniqueStrings returns items with exact duplicates removed, keeping first occurrence order
func UniqueStrings(items []string) []string {
	if len(items) == 0 {
		return items
	}

	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
