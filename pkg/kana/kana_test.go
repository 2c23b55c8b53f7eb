// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package kana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoikunavi/hoikunavi/pkg/kana"
)

/*
TestFoldKatakanaToHiragana verifies the katakana→hiragana script fold over
the mapped block, including characters that must pass through untouched.
*/
func TestFoldKatakanaToHiragana(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain_katakana", "シンヨコハマ", "しんよこはま"},
		{"small_kana", "ァィゥェォッャュョ", "ぁぃぅぇぉっゃゅょ"},
		{"block_edges", "ァヶ", "ぁゖ"},
		{"long_vowel_mark_passes", "ビール", "びーる"},
		{"hiragana_untouched", "しぶや", "しぶや"},
		{"kanji_untouched", "新横浜駅", "新横浜駅"},
		{"latin_untouched", "Aビル2号", "Aびる2号"},
		{"outside_range_vu_ka", "ヷヸヹヺ", "ヷヸヹヺ"},
		{"astral_preserved", "😀カ", "😀か"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kana.FoldKatakanaToHiragana(tt.input))
		})
	}
}

/*
TestFoldHiraganaToKatakana verifies the inverse fold.
*/
func TestFoldHiraganaToKatakana(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain_hiragana", "しんよこはま", "シンヨコハマ"},
		{"block_edges", "ぁゖ", "ァヶ"},
		{"katakana_untouched", "シブヤ", "シブヤ"},
		{"kanji_untouched", "綱島", "綱島"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kana.FoldHiraganaToKatakana(tt.input))
		})
	}
}

/*
TestFold_Roundtrip checks that folding there and back over the mapped block
is the identity.
*/
func TestFold_Roundtrip(t *testing.T) {
	src := "あいうえおかきくけこさしすせそたちつてとなにぬねのっゃゅょゎゖ"
	assert.Equal(t, src, kana.FoldKatakanaToHiragana(kana.FoldHiraganaToKatakana(src)))
}

/*
TestNormalizeForSearch covers the full canonicalization pipeline: width
folding, whitespace removal, case folding, script folding and mark
unification.
*/
func TestNormalizeForSearch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"katakana_equals_hiragana", "シンヨコ", "しんよこ"},
		{"fullwidth_spaces_removed", "　新横浜　駅　", "新横浜駅"},
		{"inner_ascii_space_removed", "日吉 本町", "日吉本町"},
		{"tabs_and_newlines_removed", "日吉\t本町\n", "日吉本町"},
		{"ascii_lowercased", "ABCビル", "abcびる"},
		{"fullwidth_ascii_folded", "ＡＢＣ１２３", "abc123"},
		{"halfwidth_katakana_folded", "ｼﾝﾖｺﾊﾏ", "しんよこはま"},
		{"halfwidth_dakuten_composed", "ﾂﾅｼﾏﾋﾞﾙ", "つなしまびる"},
		{"halfwidth_handakuten_composed", "ﾎﾟｯﾌﾟ", "ぽっぷ"},
		{"decomposed_dakuten_composed", "ひ\u3099る", "びる"},
		{"dash_variants_unified", "コ‐ポ", "こーぽ"},
		{"minus_sign_unified", "コ−ポ", "こーぽ"},
		{"halfwidth_long_vowel_unified", "ｺｰﾎﾟ", "こーぽ"},
		{"brackets_stripped", "ひよし保育園（分園）", "ひよし保育園分園"},
		{"corner_brackets_stripped", "【認可】「つなしま」", "認可つなしま"},
		{"interpunct_stripped", "キッズ・ルーム", "きっずるーむ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kana.NormalizeForSearch(tt.input))
		})
	}
}

/*
TestNormalizeForSearch_Idempotent asserts the central guarantee: running the
normalizer twice never changes the result of running it once.
*/
func TestNormalizeForSearch_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"シンヨコ",
		"　新横浜　駅　",
		"ＡＢＣ１２３ ｼﾝﾖｺ",
		"キッズ・ルーム【分園】コ‐ポ",
		"Aビル 2号 −棟−",
		"かな まじり の Text",
	}

	for _, input := range inputs {
		once := kana.NormalizeForSearch(input)
		assert.Equal(t, once, kana.NormalizeForSearch(once), "input %q", input)
	}
}

/*
TestNormalizeForSearch_EquivalentReadings verifies that spellings a human
reads identically normalize to the same canonical value.
*/
func TestNormalizeForSearch_EquivalentReadings(t *testing.T) {
	pairs := [][2]string{
		{"シンヨコ", "しんよこ"},
		{"ｼﾝﾖｺ", "しんよこ"},
		{"ﾋﾞﾙ", "ビル"},
		{"ｺｰﾎﾟ", "コーポ"},
		{"つなしま　えき", "ツナシマエキ"},
		{"キッズ・ルーム", "きっずルーム"},
	}

	for _, p := range pairs {
		assert.Equal(t, kana.NormalizeForSearch(p[0]), kana.NormalizeForSearch(p[1]),
			"%q and %q should normalize identically", p[0], p[1])
	}
}

/*
TestKanaPredicates exercises the script classification helpers.
*/
func TestKanaPredicates(t *testing.T) {
	assert.True(t, kana.IsHiragana('あ'))
	assert.False(t, kana.IsHiragana('ア'))
	assert.True(t, kana.IsKatakana('ア'))
	assert.True(t, kana.IsKatakana('ー'))
	assert.False(t, kana.IsKatakana('あ'))
	assert.True(t, kana.IsKana('ん'))
	assert.False(t, kana.IsKana('漢'))

	assert.True(t, kana.IsKanaReading("しんよこはま"))
	assert.True(t, kana.IsKanaReading("キッズ ルーム"))
	assert.False(t, kana.IsKanaReading("新横浜"))
	assert.False(t, kana.IsKanaReading(""))
}
