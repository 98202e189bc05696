package yomigana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFurigana(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		annotations []Annotation
		expected    string
	}{
		{
			name:        "注釈なしは原文そのまま",
			text:        "こんにちは",
			annotations: nil,
			expected:    "こんにちは",
		},
		{
			name: "単一注釈の置換",
			text: "先生",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 0, Len: 2, Content: "せんせい"},
			},
			expected: "せんせい",
		},
		{
			name: "注釈の前後に地の文が残る",
			text: "私は学生です",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 0, Len: 1, Content: "わたし"},
				{Type: TypeFurigana, Loc: 2, Len: 2, Content: "がくせい"},
			},
			expected: "わたしはがくせいです",
		},
		{
			name: "原文末尾以降から始まる注釈は無視",
			text: "こんにちは",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 100, Len: 1, Content: "こん"},
			},
			expected: "こんにちは",
		},
		{
			name: "入力順に依存しない（未ソート入力）",
			text: "友達に会います",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 1, Len: 1, Content: "だち"},
				{Type: TypeFurigana, Loc: 0, Len: 1, Content: "とも"},
				{Type: TypeFurigana, Loc: 3, Len: 1, Content: "あ"},
			},
			expected: "ともだちにあいます",
		},
		{
			name: "範囲超過のスパン長は切り詰め",
			text: "彼女",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 0, Len: 5, Content: "かのじょ"},
			},
			expected: "かのじょ",
		},
		{
			name: "重なりは先に始まるスパンが勝つ",
			text: "友達",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 0, Len: 2, Content: "ともだち"},
				{Type: TypeFurigana, Loc: 1, Len: 1, Content: "だち"},
			},
			expected: "ともだち",
		},
		{
			name: "furigana 以外の種別は完全に無視",
			text: "先生",
			annotations: []Annotation{
				{Type: "emoji", Loc: 0, Len: 2, Content: "せんせい"},
			},
			expected: "先生",
		},
		{
			name: "vocabulary 注釈は素通し",
			text: "日本語を勉強します",
			annotations: []Annotation{
				{Type: TypeVocabulary, Loc: 0, Len: 3, ID: 42},
				{Type: TypeFurigana, Loc: 0, Len: 3, Content: "にほんご"},
				{Type: TypeFurigana, Loc: 4, Len: 2, Content: "べんきょう"},
			},
			expected: "にほんごをべんきょうします",
		},
		{
			name: "負の長さはゼロ幅として扱う",
			text: "学校",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 0, Len: -3, Content: "がっこう"},
			},
			expected: "がっこう学校",
		},
		{
			name:        "空文字列",
			text:        "",
			annotations: []Annotation{{Type: TypeFurigana, Loc: 0, Len: 1, Content: "あ"}},
			expected:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderFurigana(tt.text, tt.annotations))
		})
	}
}

// 再実行の冪等性: 注釈なしで自身の出力に適用しても変化しない。
func TestRenderFurigana_Idempotent(t *testing.T) {
	annotations := []Annotation{
		{Type: TypeFurigana, Loc: 0, Len: 2, Content: "ともだち"},
		{Type: TypeFurigana, Loc: 3, Len: 1, Content: "あ"},
	}
	first := RenderFurigana("友達に会います", annotations)
	assert.Equal(t, first, RenderFurigana(first, nil))
}

// 呼び出し側のスライスを並べ替えないこと。
func TestRenderFurigana_DoesNotMutateInput(t *testing.T) {
	annotations := []Annotation{
		{Type: TypeFurigana, Loc: 3, Len: 1, Content: "あ"},
		{Type: TypeFurigana, Loc: 0, Len: 2, Content: "ともだち"},
	}
	RenderFurigana("友達に会います", annotations)

	assert.Equal(t, 3, annotations[0].Loc)
	assert.Equal(t, 0, annotations[1].Loc)
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		annotations []Annotation
		expected    []Segment
	}{
		{
			name:        "注釈なしは単一セグメント",
			text:        "こんにちは",
			annotations: nil,
			expected:    []Segment{{Text: "こんにちは"}},
		},
		{
			name: "地の文と注釈スパンの交互配置",
			text: "私は学生です",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 2, Len: 2, Content: "がくせい", ID: 7},
				{Type: TypeFurigana, Loc: 0, Len: 1, Content: "わたし"},
			},
			expected: []Segment{
				{Text: "私", Furigana: "わたし"},
				{Text: "は"},
				{Text: "学生", Furigana: "がくせい", ID: 7},
				{Text: "です"},
			},
		},
		{
			name: "重なりスパンは脱落しIDも伝搬しない",
			text: "友達",
			annotations: []Annotation{
				{Type: TypeFurigana, Loc: 0, Len: 2, Content: "ともだち", ID: 1},
				{Type: TypeFurigana, Loc: 1, Len: 1, Content: "だち", ID: 2},
			},
			expected: []Segment{
				{Text: "友達", Furigana: "ともだち", ID: 1},
			},
		},
		{
			name:        "空文字列は空のセグメント列",
			text:        "",
			annotations: nil,
			expected:    []Segment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSegments(tt.text, tt.annotations))
		})
	}
}
