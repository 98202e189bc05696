package vocab

import (
	"context"

	"github.com/shouni/go-yomigana/pkg/yomigana"
)

// ----------------------------------------------------------------------
// インターフェース定義
// ----------------------------------------------------------------------

// EntryClient は語彙データセットを取得する能力を抽象化するインターフェースです。
// synthesis.Client がこれを満たします。
type EntryClient interface {
	GetEntries(ctx context.Context) ([]byte, error)
}

// ----------------------------------------------------------------------
// データモデル (語彙エントリ)
// ----------------------------------------------------------------------

// Entry は教科書データセット上の語彙項目一件です。
// Accent は単一整数・配列・null のいずれの形でも到着します。
type Entry struct {
	Word             string          `json:"word"`
	Reading          string          `json:"reading"`
	Accent           yomigana.Accent `json:"accent"`
	KnowledgePointID int             `json:"knowledge_point_id,omitempty"`
	Sentences        []Sentence      `json:"sentences,omitempty"`
}

// Sentence は語彙項目に付随する例文です。Annotations は上流のLLMが生成した
// スパン注釈であり、位置や重なりは信頼できない前提で扱います。
type Sentence struct {
	Text        string                `json:"text"`
	Annotations []yomigana.Annotation `json:"annotations,omitempty"`
}

// Data はロード済みの語彙データセットを保持します。
type Data struct {
	Entries []Entry
	byWord  map[string]int // Word -> Entries インデックス
}

// Lookup は表記から語彙エントリを検索します。
func (d *Data) Lookup(word string) (*Entry, bool) {
	i, found := d.byWord[word]
	if !found {
		return nil, false
	}
	return &d.Entries[i], true
}
