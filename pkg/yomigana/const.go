package yomigana

// ----------------------------------------------------------------------
// アノテーション種別
// ----------------------------------------------------------------------

const (
	// TypeFurigana はレンダラーが解釈する唯一のアノテーション種別です。
	TypeFurigana = "furigana"
	// TypeVocabulary は語彙ハイライト用の種別です。レンダラーはそのまま素通しします。
	TypeVocabulary = "vocabulary"
)

// ----------------------------------------------------------------------
// ピッチアクセント記号
// ----------------------------------------------------------------------

const (
	// PitchStartMarker は音調の開始を示します。
	PitchStartMarker = "^"
	// DownstepMarker はアクセント核（下降位置）の直後に挿入されます。
	DownstepMarker = "!"
	// PhonemeAlphabet は phoneme タグの alphabet 属性値です。
	// 下流の音声合成マークアップ層との互換性契約であり、変更できません。
	PhonemeAlphabet = "yomigana"
)

// phonemeTagFormat は音声合成フロントエンドが消費するタグの固定テンプレートです。
// 属性名・引用符・タグ構造はビット単位の互換性契約です。
const phonemeTagFormat = `<phoneme alphabet="` + PhonemeAlphabet + `" ph="%s">%s</phoneme>`

// ----------------------------------------------------------------------
// 小書き仮名
// ----------------------------------------------------------------------

// smallKanaSet は直前の仮名と融合して一つのモーラを形成する小書き仮名の集合です。
// 促音 っ/ッ は音韻的には後続子音を変化させますが、この集合には含めません。
// 常に単独で一モーラを形成します（既存データがこの分割を前提に作られています）。
var smallKanaSet = map[rune]struct{}{
	'ゃ': {}, 'ゅ': {}, 'ょ': {},
	'ぁ': {}, 'ぃ': {}, 'ぅ': {}, 'ぇ': {}, 'ぉ': {},
	'ャ': {}, 'ュ': {}, 'ョ': {},
	'ァ': {}, 'ィ': {}, 'ゥ': {}, 'ェ': {}, 'ォ': {},
}
