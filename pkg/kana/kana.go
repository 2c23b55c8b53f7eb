// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

// Package kana normalizes Japanese text for search matching and sorting.
//
// # Overview
//
// Facility names and station readings arrive in a mix of scripts: kanji,
// hiragana, katakana (full- and half-width), full-width Latin and assorted
// punctuation. A query for "しんよこ" must match a record that spells the
// reading "シンヨコ". This package folds every spelling of the same reading
// into one canonical form so that matching reduces to plain substring
// containment and sorting reduces to plain byte comparison.
//
// All functions are pure and total: any input string (including the empty
// string) maps to a defined output, and no function returns an error.
package kana

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Kana script fold range. The two blocks are parallel: every katakana code
// point in [U+30A1, U+30F6] sits exactly 0x60 above its hiragana equivalent.
// Characters outside the mapped range (combining marks, the long-vowel mark,
// small-kana extensions past ヶ) are intentionally left untouched.
const (
	hiraganaFoldLo = 0x3041 // ぁ
	hiraganaFoldHi = 0x3096 // ゖ
	katakanaFoldLo = 0x30A1 // ァ
	katakanaFoldHi = 0x30F6 // ヶ
	scriptOffset   = katakanaFoldLo - hiraganaFoldLo
)

// Full block boundaries, used by the Is* predicates.
const (
	hiraganaBlockLo = 0x3040
	hiraganaBlockHi = 0x309F
	katakanaBlockLo = 0x30A0
	katakanaBlockHi = 0x30FF
)

// longVowelMark is the canonical long-vowel marker every dash variant folds into.
const longVowelMark = 'ー' // U+30FC

// FoldKatakanaToHiragana maps every katakana character in [U+30A1, U+30F6]
// to its hiragana equivalent. All other characters pass through unchanged.
func FoldKatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= katakanaFoldLo && r <= katakanaFoldHi {
			r -= scriptOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldHiraganaToKatakana maps every hiragana character in [U+3041, U+3096]
// to its katakana equivalent. All other characters pass through unchanged.
func FoldHiraganaToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= hiraganaFoldLo && r <= hiraganaFoldHi {
			r += scriptOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}

// markFolder unifies dash/long-vowel variants into ー and strips bracket
// pairs and the interpunct. It runs after width folding, so only the
// full-width or ASCII form of each mark can still occur. Transformers carry
// state, so a fresh chain is built per call.
func markFolder() transform.Transformer {
	return transform.Chain(
		runes.Map(foldDash),
		runes.Remove(runes.Predicate(isStrippedMark)),
	)
}

// foldDash maps the Unicode dash/minus variants and the half-width long-vowel
// mark onto the canonical long-vowel marker.
func foldDash(r rune) rune {
	switch {
	case r >= 0x2010 && r <= 0x2015: // hyphen .. horizontal bar
		return longVowelMark
	case r == 0x2212: // minus sign
		return longVowelMark
	case r == 0xFF70: // half-width long-vowel mark
		return longVowelMark
	}
	return r
}

// isStrippedMark reports whether r is a bracket or separator glyph that
// carries no reading and is removed outright.
func isStrippedMark(r rune) bool {
	switch r {
	case '(', ')', '（', '）', '[', ']', '［', '］', '{', '}',
		'【', '】', '「', '」', '『', '』', '・':
		return true
	}
	return false
}

// NormalizeForSearch derives the canonical comparison string for s.
//
// # Pipeline
//
//  1. Fold half-width forms to full-width and full-width ASCII to ASCII
//     (half-width ｼﾝﾖｺ and full-width Ａ both unify), then compose to NFC:
//     width folding leaves voiced marks combining (ﾋﾞ becomes ヒ+U+3099), and
//     composition turns them into the precomposed ビ that full-width input
//     carries, so both spellings land on the same canonical form.
//  2. Remove all whitespace, including the full-width space U+3000. Removal
//     (rather than collapsing to a single space) is deliberate: Japanese text
//     has no meaningful word boundaries, and removal makes substring matching
//     insensitive to arbitrary spacing in source data.
//  3. Lowercase.
//  4. Fold katakana to hiragana.
//  5. Unify dash/long-vowel variants into ー and strip brackets.
//
// The result is idempotent: normalizing an already-normalized string returns
// it unchanged.
func NormalizeForSearch(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(width.Fold.String(s))

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = FoldKatakanaToHiragana(s)

	folded, _, err := transform.String(markFolder(), s)
	if err != nil {
		// runes.Map and runes.Remove never fail; keep the fold-only form if
		// the transform chain ever does.
		return s
	}
	return folded
}

// IsHiragana reports whether r lies in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= hiraganaBlockLo && r <= hiraganaBlockHi
}

// IsKatakana reports whether r lies in the katakana block.
func IsKatakana(r rune) bool {
	return r >= katakanaBlockLo && r <= katakanaBlockHi
}

// IsKana reports whether r is hiragana or katakana.
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// IsKanaReading reports whether s consists only of kana, the long-vowel mark
// and spaces. Used to validate hand-entered reading fields.
func IsKanaReading(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
