package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shouni/go-yomigana/pkg/yomigana"
	"github.com/shouni/go-yomigana/pkg/yomigana/synthesis"
	"github.com/shouni/go-yomigana/pkg/yomigana/vocab"
)

// ----------------------------------------------------------------------
// 設定定数
// ----------------------------------------------------------------------

const (
	appClientTimeout = 60 * time.Second
	outputDir        = "asset/audio"
)

// ----------------------------------------------------------------------
// 入力データ (デモ用)
// ----------------------------------------------------------------------

// demoText と demoAnnotations は文章注釈サービス（LLM）の出力を模したものです。
// 実運用ではスパンの順序や重なりは保証されないため、わざと未ソートにしてあります。
var (
	demoText        = "友達に会います"
	demoAnnotations = []yomigana.Annotation{
		{Type: yomigana.TypeFurigana, Loc: 3, Len: 1, Content: "あ"},
		{Type: yomigana.TypeFurigana, Loc: 0, Len: 2, Content: "ともだち", ID: 21},
		{Type: yomigana.TypeVocabulary, Loc: 0, Len: 2, ID: 21},
	}
)

// demoDataset は教科書データセットの語彙エントリを模したJSONです。
const demoDataset = `[
	{"word": "先生", "reading": "せんせい", "accent": 3, "knowledge_point_id": 11},
	{"word": "あの方", "reading": "あのかた", "accent": [3, 4]},
	{"word": "私", "reading": "わたし", "accent": 0,
	 "sentences": [
		{"text": "私は学生です",
		 "annotations": [
			{"type": "furigana", "loc": 0, "len": 1, "content": "わたし"},
			{"type": "furigana", "loc": 2, "len": 2, "content": "がくせい"}
		 ]}
	 ]}
]`

func main() {
	// ログ設定
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx := context.Background()

	// 1. ふりがなレンダリング
	reading := yomigana.RenderFurigana(demoText, demoAnnotations)
	fmt.Printf("原文: %s\n読み: %s\n", demoText, reading)

	// 2. UI向けセグメント分割（知識ポイントのハイライト用）
	for _, seg := range yomigana.SplitSegments(demoText, demoAnnotations) {
		if seg.Furigana != "" {
			fmt.Printf("  [%s (%s) id=%d]", seg.Text, seg.Furigana, seg.ID)
		} else {
			fmt.Printf("  [%s]", seg.Text)
		}
	}
	fmt.Println()

	// 3. 語彙データセットのロード
	data, err := vocab.ParseEntries([]byte(demoDataset))
	if err != nil {
		slog.Error("語彙データセットのロードに失敗しました。", "error", err)
		os.Exit(1)
	}

	// 4. 音声合成マークアップの構築
	fmt.Println("\n音声合成マークアップ:")
	for _, entry := range data.Entries {
		fmt.Printf("  %s\n", yomigana.BuildPhonemeTag(entry.Word, entry.Reading, entry.Accent))
	}

	// 5. 音声合成（YOMIGANA_TTS_URL が設定されている場合のみ実行）
	audioOutput := os.Getenv("YOMIGANA_TTS_URL") != ""
	synthesizer, _ := synthesis.NewSynthesizer(ctx, appClientTimeout, audioOutput)

	if err := synthesizer.Execute(ctx, data.Entries, outputDir); err != nil {
		slog.Error("音声合成の実行に失敗しました。", "error", err)
		os.Exit(1)
	}

	if audioOutput {
		slog.Info("音声合成が正常に完了しました。", "output_dir", outputDir)
	}
}
