package yomigana

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------
// データモデル (アクセント)
// ----------------------------------------------------------------------

// Accent はピッチアクセント核の候補位置列です。教科書データセットの
// JSON 上では単一の整数・整数配列・null（データなし）のいずれかで
// 表現されるため、UnmarshalJSON が三形態すべてを受け付けます。
//
// 複数候補がある語（アクセント併記語）でもレンダリングには先頭要素のみを
// 使用します。意図的な単純化であり、残りの候補は呼び出し側の参照用に
// 保持だけします。
type Accent []int

// UnmarshalJSON は null / 整数 / 整数配列の三形態をデコードします。
func (a *Accent) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var positions []int
		if err := json.Unmarshal(data, &positions); err != nil {
			return fmt.Errorf("アクセント配列のデコードに失敗しました: %w", err)
		}
		*a = positions
		return nil
	}

	var position int
	if err := json.Unmarshal(data, &position); err != nil {
		return fmt.Errorf("アクセント値のデコードに失敗しました: %w", err)
	}
	*a = []int{position}
	return nil
}

// Primary は主アクセント（先頭候補）を返します。データがない場合は ok=false です。
func (a Accent) Primary() (pos int, ok bool) {
	if len(a) == 0 {
		return 0, false
	}
	return a[0], true
}

// ----------------------------------------------------------------------
// アクセント符号化
// ----------------------------------------------------------------------

// EncodeAccent は読みとアクセント位置から音調記号付きの読みを生成します。
//
//   - accentPos == 0 は平板型（下降なし）。^ を前置するのみ。
//   - accentPos がモーラ数以上の場合は範囲外データとして平板型に
//     フォールバックします。エラーではなく定義済みの劣化動作です。
//   - それ以外は accentPos 番目のモーラ直後に下降記号 ! を挿入し、
//     ^{前半}!{後半} を返します。
//
// 負のアクセント位置も平板型として扱い、本関数は決して失敗しません。
func EncodeAccent(reading string, accentPos int) string {
	if accentPos <= 0 {
		return PitchStartMarker + reading
	}

	morae := ToMorae(reading)
	if accentPos >= len(morae) {
		return PitchStartMarker + reading
	}

	before := strings.Join(morae[:accentPos], "")
	after := strings.Join(morae[accentPos:], "")
	return PitchStartMarker + before + DownstepMarker + after
}

// BuildPhonemeTag は音声合成マークアップ層が消費する phoneme タグを構築します。
// アクセントデータがない場合は音調記号なしの素の読みを ph 属性に入れます。
func BuildPhonemeTag(text, reading string, accent Accent) string {
	ph := reading
	if pos, ok := accent.Primary(); ok {
		ph = EncodeAccent(reading, pos)
	}
	return fmt.Sprintf(phonemeTagFormat, ph, text)
}
