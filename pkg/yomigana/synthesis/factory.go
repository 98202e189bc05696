package synthesis

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shouni/go-yomigana/pkg/yomigana/vocab"
)

const defaultAPIURL = "http://localhost:50032"

// ----------------------------------------------------------------------
// No-op パターン
// ----------------------------------------------------------------------

// noopSynthesizer は Synthesizer インターフェースを満たすダミー実装です。
type noopSynthesizer struct{}

// Execute は何もしません。
func (n *noopSynthesizer) Execute(ctx context.Context, entries []vocab.Entry, outputDir string, opts ...ExecuteOption) error {
	slog.Info("音声合成機能は無効です。Execute呼び出しはスキップされました。", "entries_count", len(entries))
	return nil
}

// ----------------------------------------------------------------------
// Factory 関数
// ----------------------------------------------------------------------

// NewSynthesizer は合成エンジンへのクライアントを初期化し、
// Synthesizer インターフェースを実装した具象型を組み立てて返します。
// audioOutput が false の場合はダミーの Synthesizer を返します (No-opパターン)。
func NewSynthesizer(ctx context.Context, httpTimeout time.Duration, audioOutput bool) (Synthesizer, *Client) {
	if !audioOutput {
		slog.Info("音声合成機能は無効です。ダミーのSynthesizerを返します。", "action", "skip_initialization")
		return &noopSynthesizer{}, nil
	}

	apiURL := os.Getenv("YOMIGANA_TTS_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
		slog.Warn("YOMIGANA_TTS_URL 環境変数が設定されていません。", "default_url", apiURL)
	}

	client := NewClient(apiURL, httpTimeout)

	engineConfig := EngineConfig{
		MaxParallelItems:  DefaultMaxParallelItems,
		ItemTimeout:       DefaultItemTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}

	engine := NewEngine(client, engineConfig)
	slog.InfoContext(ctx, "Synthesizerの初期化が完了しました。",
		"max_parallel", engineConfig.MaxParallelItems,
		"item_timeout", engineConfig.ItemTimeout.String())

	return engine, client
}
