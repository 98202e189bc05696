package yomigana

import (
	"sort"
	"strings"
)

// ----------------------------------------------------------------------
// データモデル (アノテーション)
// ----------------------------------------------------------------------

// Annotation は原文に対するスパン注釈です。上流の文章注釈サービス（LLM）が
// 生成するため、位置・長さ・順序・重なりのいずれも信頼できない入力として扱います。
// Loc と Len は文字（rune）単位です。バイト単位ではありません。
type Annotation struct {
	Type    string `json:"type"`
	Loc     int    `json:"loc"`
	Len     int    `json:"len"`
	Content string `json:"content"`
	// ID は外部エンティティ（知識ポイント）への逆参照です。
	// レンダラーは解釈せず、セグメント分割時にそのまま伝搬します。
	ID int `json:"id,omitempty"`
}

// Segment は対話的なUI描画（特定スパンのハイライト）向けの描画単位です。
// Furigana が空のセグメントは注釈のない地の文です。
type Segment struct {
	Text     string `json:"text"`
	Furigana string `json:"furigana,omitempty"`
	ID       int    `json:"id,omitempty"`
}

// ----------------------------------------------------------------------
// レンダリングロジック
// ----------------------------------------------------------------------

// RenderFurigana は原文とふりがな注釈を単一の読み文字列に合成します。
//
// 注釈は type が furigana のものだけを対象とし、Loc 昇順でソートした上で
// 単調なカーソルを用いた一回の左→右走査で解決します。
//   - カーソルより前から始まるスパン（= 先行スパンと重なるスパン）は黙って捨てる
//   - 原文末尾以降から始まるスパンも捨てる
//   - Loc+Len が原文長を超える場合は Len を切り詰める
//
// この方針により不正な入力はエラーではなく「そのスパンを無視する」劣化に
// 吸収され、本関数は決して失敗しません。
func RenderFurigana(text string, annotations []Annotation) string {
	runes := []rune(text)

	var b strings.Builder
	current := 0

	for _, a := range sortedFurigana(annotations) {
		if a.Loc < current || a.Loc >= len(runes) {
			continue
		}

		length := clampLen(a.Loc, a.Len, len(runes))

		if a.Loc > current {
			b.WriteString(string(runes[current:a.Loc]))
		}
		b.WriteString(a.Content)

		current = a.Loc + length
	}

	if current < len(runes) {
		b.WriteString(string(runes[current:]))
	}

	return b.String()
}

// SplitSegments は RenderFurigana と同じソート・重なり解決ロジックで原文を
// セグメント列に分解します。注釈のない区間は Furigana なしのセグメントに、
// 注釈されたスパンは原文部分とふりがなを併せ持つセグメントになります。
func SplitSegments(text string, annotations []Annotation) []Segment {
	runes := []rune(text)

	segments := make([]Segment, 0, len(annotations)+1)
	current := 0

	for _, a := range sortedFurigana(annotations) {
		if a.Loc < current || a.Loc >= len(runes) {
			continue
		}

		length := clampLen(a.Loc, a.Len, len(runes))

		if a.Loc > current {
			segments = append(segments, Segment{Text: string(runes[current:a.Loc])})
		}
		segments = append(segments, Segment{
			Text:     string(runes[a.Loc : a.Loc+length]),
			Furigana: a.Content,
			ID:       a.ID,
		})

		current = a.Loc + length
	}

	if current < len(runes) {
		segments = append(segments, Segment{Text: string(runes[current:])})
	}

	return segments
}

// ----------------------------------------------------------------------
// 内部ヘルパー
// ----------------------------------------------------------------------

// sortedFurigana は furigana 注釈のみを抽出し、Loc 昇順のローカルコピーを返します。
// 呼び出し元のスライスは変更しません。
func sortedFurigana(annotations []Annotation) []Annotation {
	furigana := make([]Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a.Type == TypeFurigana {
			furigana = append(furigana, a)
		}
	}

	sort.SliceStable(furigana, func(i, j int) bool {
		return furigana[i].Loc < furigana[j].Loc
	})

	return furigana
}

// clampLen はスパン長を原文の範囲内に切り詰めます。負の長さはゼロ幅として扱います。
func clampLen(loc, length, textLen int) int {
	if length < 0 {
		return 0
	}
	if loc+length > textLen {
		return textLen - loc
	}
	return length
}
