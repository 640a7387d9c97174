// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

// Package textnorm provides accent- and case-insensitive text matching and
// ASCII slug generation for Unicode strings.
//
// # Usage
//
// Species and breeder names are Brazilian Portuguese ("Jataí", "Uruçu"),
// while users type unaccented queries ("jatai", "urucu"). Every free-text
// comparison in the catalog goes through [Normalize] so that both sides
// collapse to the same base-letter form.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Normalize lowercases s and strips diacritical marks.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, s)
	if err != nil {
		// Malformed input is matched as-is rather than dropped.
		result = s
	}

	return strings.ToLower(result)
}

// Matches reports whether haystack contains needle under normalization.
//
// The needle is expected to be already normalized (callers normalize the
// search term once, then probe many fields with it).
func Matches(haystack, normalizedNeedle string) bool {
	if normalizedNeedle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), normalizedNeedle)
}

// MatchesAny reports whether any of the given fields matches the needle.
func MatchesAny(normalizedNeedle string, fields ...string) bool {
	for _, field := range fields {
		if Matches(field, normalizedNeedle) {
			return true
		}
	}
	return false
}

// Slug converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// Slugs are the human-readable species identifiers used in routing and in
// the embedded reference dataset (e.g., "urucu-verdadeira").
func Slug(s string) string {
	result := Normalize(s)

	// Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
