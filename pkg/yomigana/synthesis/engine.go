package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/shouni/go-yomigana/pkg/yomigana"
	"github.com/shouni/go-yomigana/pkg/yomigana/vocab"
)

// Engine は語彙データセットから学習用音声ファイル群を組み立てるバッチ処理の中核です。
type Engine struct {
	client  MarkupClient
	config  EngineConfig
	limiter *rate.Limiter
}

type EngineConfig struct {
	MaxParallelItems  int
	ItemTimeout       time.Duration
	RequestsPerSecond float64
}

// --- 内部データ構造 ---

// outputFile は一件の合成結果（書き出し待ちのWAV）です。
type outputFile struct {
	name string
	data []byte
}

// itemResult は語彙項目一件の処理結果です。
type itemResult struct {
	index int
	files []outputFile
	err   error
}

// ----------------------------------------------------------------------
// Executeメソッド用のオプション定義 (Functional Options Pattern)
// ----------------------------------------------------------------------

// ExecuteConfig は Execute メソッドの実行中に適用されるオプション設定を保持します。
type ExecuteConfig struct {
	VoiceID         int
	MaxReadingRunes int
}

// ExecuteOption はオプションを適用するための関数シグネチャです。
type ExecuteOption func(*ExecuteConfig)

// newExecuteConfig は Execute のデフォルト設定を初期化します。
func newExecuteConfig() *ExecuteConfig {
	return &ExecuteConfig{
		VoiceID:         DefaultVoiceID,
		MaxReadingRunes: MaxReadingRuneLength,
	}
}

// WithVoiceID は合成に使用する声IDを指定するオプションです。
func WithVoiceID(id int) ExecuteOption {
	return func(cfg *ExecuteConfig) {
		if id > 0 {
			cfg.VoiceID = id
		}
	}
}

// WithMaxReadingRunes は例文読みの分割上限（文字数）を指定するオプションです。
func WithMaxReadingRunes(n int) ExecuteOption {
	return func(cfg *ExecuteConfig) {
		if n > 0 {
			cfg.MaxReadingRunes = n
		}
	}
}

// NewEngine は新しい Engine インスタンスを作成し、依存関係を注入します。
func NewEngine(client MarkupClient, config EngineConfig) *Engine {
	if config.MaxParallelItems == 0 {
		config.MaxParallelItems = DefaultMaxParallelItems
	}
	if config.ItemTimeout == 0 {
		config.ItemTimeout = DefaultItemTimeout
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Engine{
		client:  client,
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
	}
}

// ----------------------------------------------------------------------
// 項目処理ロジック
// ----------------------------------------------------------------------

// synthesize はレートリミッターを通した上で合成APIを一回呼び出します。
func (e *Engine) synthesize(ctx context.Context, markup string, voiceID int) ([]byte, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return e.client.RunSynthesis(ctx, markup, voiceID)
}

// processEntry は語彙項目一件分の音声（単語音声と例文音声）を合成します。
func (e *Engine) processEntry(ctx context.Context, entry vocab.Entry, index int, cfg *ExecuteConfig) itemResult {
	var files []outputFile

	// 1. 単語音声: 読みとアクセントから phoneme マークアップを構築
	markup := yomigana.BuildPhonemeTag(entry.Word, entry.Reading, entry.Accent)

	wavData, err := e.synthesize(ctx, markup, cfg.VoiceID)
	if err != nil {
		return itemResult{index: index, err: fmt.Errorf("語彙 %q の音声合成失敗: %w", entry.Word, err)}
	}
	files = append(files, outputFile{
		name: fmt.Sprintf("%03d_%s.wav", index+1, entry.Word),
		data: wavData,
	})

	// 2. 例文音声: 注釈から読みを展開し、長文は句読点境界で分割してから合成
	for si, sentence := range entry.Sentences {
		reading := yomigana.RenderFurigana(sentence.Text, sentence.Annotations)
		parts := SplitReading(reading, cfg.MaxReadingRunes)

		if len(parts) == 0 {
			slog.WarnContext(ctx, "読みが空の例文をスキップします", "word", entry.Word, "sentence_index", si)
			continue
		}

		var partWavs [][]byte
		if len(parts) == 1 {
			// 分割不要なら原文をそのままタグの本文に使える
			wav, err := e.synthesize(ctx, yomigana.BuildPhonemeTag(sentence.Text, reading, nil), cfg.VoiceID)
			if err != nil {
				return itemResult{index: index, err: fmt.Errorf("語彙 %q の例文 %d の音声合成失敗: %w", entry.Word, si+1, err)}
			}
			partWavs = append(partWavs, wav)
		} else {
			slog.InfoContext(ctx, "長い例文読みを分割して合成します",
				"word", entry.Word, "sentence_index", si, "parts", len(parts))
			for _, part := range parts {
				wav, err := e.synthesize(ctx, yomigana.BuildPhonemeTag(part, part, nil), cfg.VoiceID)
				if err != nil {
					return itemResult{index: index, err: fmt.Errorf("語彙 %q の例文 %d の音声合成失敗: %w", entry.Word, si+1, err)}
				}
				partWavs = append(partWavs, wav)
			}
		}

		combined, err := CombineWavData(partWavs)
		if err != nil {
			return itemResult{index: index, err: fmt.Errorf("語彙 %q の例文 %d のWAV結合失敗: %w", entry.Word, si+1, err)}
		}
		files = append(files, outputFile{
			name: fmt.Sprintf("%03d_%s_sentence_%d.wav", index+1, entry.Word, si+1),
			data: combined,
		})
	}

	return itemResult{index: index, files: files}
}

// ----------------------------------------------------------------------
// メイン処理 (Execute メソッド)
// ----------------------------------------------------------------------

func (e *Engine) Execute(ctx context.Context, entries []vocab.Entry, outputDir string, opts ...ExecuteOption) error {
	// 1. デフォルト設定の初期化とオプションの適用
	cfg := newExecuteConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(entries) == 0 {
		return fmt.Errorf("合成対象の語彙エントリがありません")
	}

	// 2. 並列処理の準備
	semaphore := make(chan struct{}, e.config.MaxParallelItems)
	wg := sync.WaitGroup{}
	resultsChan := make(chan itemResult, len(entries))

	slog.InfoContext(ctx, "語彙音声バッチ処理開始",
		"total_entries", len(entries),
		"max_parallel", e.config.MaxParallelItems,
		"voice_id", cfg.VoiceID)

	// 3. 語彙項目ごとの並列処理開始
	for i, entry := range entries {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "バッチ処理ループが外部コンテキストキャンセルにより終了しました。")
			goto END_LOOP
		case semaphore <- struct{}{}:
			// セマフォ確保成功
		}

		wg.Add(1)

		go func(i int, entry vocab.Entry) {
			defer wg.Done()
			defer func() { <-semaphore }()

			itemCtx, cancel := context.WithTimeout(ctx, e.config.ItemTimeout)
			defer cancel()

			resultsChan <- e.processEntry(itemCtx, entry, i, cfg)
		}(i, entry)
	}

END_LOOP:
	// 4. 並列処理終了後の集約
	wg.Wait()
	close(resultsChan)

	orderedFiles := make([][]outputFile, len(entries))
	var runtimeErrors []string

	for res := range resultsChan {
		if res.err != nil {
			runtimeErrors = append(runtimeErrors, res.err.Error())
		} else {
			orderedFiles[res.index] = res.files
		}
	}

	// 5. ファイルへの書き込み (項目順)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました (%s): %w", outputDir, err)
	}

	written := 0
	for _, files := range orderedFiles {
		for _, f := range files {
			path := filepath.Join(outputDir, f.name)
			if err := os.WriteFile(path, f.data, 0644); err != nil {
				runtimeErrors = append(runtimeErrors, fmt.Sprintf("ファイル書き込み失敗 (%s): %v", path, err))
				continue
			}
			written++
		}
	}

	// 6. 最終エラー処理
	if len(runtimeErrors) > 0 {
		return &ErrSynthesisBatch{
			TotalErrors: len(runtimeErrors),
			Details:     runtimeErrors,
		}
	}

	if written == 0 {
		return fmt.Errorf("すべての語彙項目の合成に失敗したか、有効な項目がありませんでした")
	}

	slog.InfoContext(ctx, "語彙音声バッチ処理が完了しました", "files_written", written, "output_dir", outputDir)
	return nil
}
