// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII field keys from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are used as per-language field names inside search documents
// (e.g., "official_zh_hans", "short_x_jat_1"). This package handles
// normalization, accent removal, and character sanitization so that any
// language tag found in a catalog dump yields a storage-safe key.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-underscore characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]+`)
	// multiUnderscore collapses multiple consecutive underscores into one.
	multiUnderscore = regexp.MustCompile(`_{2,}`)
)

// From converts an arbitrary Unicode string into a storage-safe ASCII key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with underscores.
// 5. Collapses multiple underscores and trims leading/trailing underscores.
//
// Distinct inputs drawn from the language-tag alphabet (ASCII letters,
// digits, hyphens) never collapse to the same key: every hyphen maps to
// exactly one underscore and nothing else in the alphabet does.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with underscores
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, result)

	// 4. Clean up separators
	result = nonAlphanumeric.ReplaceAllString(result, "_")
	result = multiUnderscore.ReplaceAllString(result, "_")
	result = strings.Trim(result, "_")

	return result
}

// Field builds a document field key from its parts (role, language tag,
// occurrence counter). Empty parts are skipped, the rest are joined with
// underscores and normalized via [From].
//
// Field("official", "zh-Hans") returns "official_zh_hans".
func Field(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return From(strings.Join(kept, "_"))
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
