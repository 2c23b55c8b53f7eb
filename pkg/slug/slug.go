// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are used as human-readable identifiers for facility pages
// (e.g., "himawari-hoikuen"). Facility names are Japanese, so the package
// romanizes the input before sanitizing it.
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (folds half-width katakana and compatibility forms).
// 2. Transliterates to ASCII (ひまわり → himawari, 保育園 → Bao Yu Yuan).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric runs with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	// 1. Normalize, then romanize
	result := unidecode.Unidecode(norm.NFKC.String(s))

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}
