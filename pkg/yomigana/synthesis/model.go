package synthesis

import (
	"context"

	"github.com/shouni/go-yomigana/pkg/yomigana/vocab"
)

// ----------------------------------------------------------------------
// インターフェース
// ----------------------------------------------------------------------

// Synthesizer は、語彙データセットから音声ファイル群を生成するための契約を定義します。
// オプション（例: 声ID）は Functional Options Pattern を通じて提供されます。
type Synthesizer interface {
	// Execute は語彙エントリ群の音声を合成し、outputDir 配下にWAVファイルを書き出します。
	Execute(ctx context.Context, entries []vocab.Entry, outputDir string, opts ...ExecuteOption) error
}

// MarkupClient は Client が満たすべき合成API呼び出しインターフェースです。
// markup には phoneme タグ形式の合成マークアップを渡します。
type MarkupClient interface {
	RunSynthesis(ctx context.Context, markup string, voiceID int) ([]byte, error)
}

// Voice は合成エンジンが提供する声の一覧応答に対応する型です。
type Voice struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
