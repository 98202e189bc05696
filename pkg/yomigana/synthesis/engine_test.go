package synthesis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-yomigana/pkg/yomigana"
	"github.com/shouni/go-yomigana/pkg/yomigana/vocab"
)

// fakeMarkupClient は受け取ったマークアップを記録し、固定のWAVを返すテスト用クライアントです。
type fakeMarkupClient struct {
	mu      sync.Mutex
	markups []string
	wav     []byte
	failOn  string // このマークアップを含む呼び出しだけ失敗させる
}

func (c *fakeMarkupClient) RunSynthesis(ctx context.Context, markup string, voiceID int) ([]byte, error) {
	c.mu.Lock()
	c.markups = append(c.markups, markup)
	c.mu.Unlock()

	if c.failOn != "" && strings.Contains(markup, c.failOn) {
		return nil, errors.New("合成エンジン応答エラー")
	}
	return c.wav, nil
}

func (c *fakeMarkupClient) received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.markups...)
}

func testEngine(client MarkupClient) *Engine {
	return NewEngine(client, EngineConfig{
		MaxParallelItems:  2,
		ItemTimeout:       5 * time.Second,
		RequestsPerSecond: 1000, // テストではレート制限を事実上無効化
	})
}

func TestEngine_Execute(t *testing.T) {
	client := &fakeMarkupClient{wav: makeWav(t, []byte{1, 2, 3, 4})}
	engine := testEngine(client)
	outputDir := t.TempDir()

	entries := []vocab.Entry{
		{Word: "先生", Reading: "せんせい", Accent: yomigana.Accent{3}},
		{
			Word:    "私",
			Reading: "わたし",
			Accent:  yomigana.Accent{0},
			Sentences: []vocab.Sentence{
				{
					Text: "私は学生です",
					Annotations: []yomigana.Annotation{
						{Type: yomigana.TypeFurigana, Loc: 0, Len: 1, Content: "わたし"},
						{Type: yomigana.TypeFurigana, Loc: 2, Len: 2, Content: "がくせい"},
					},
				},
			},
		},
	}

	err := engine.Execute(context.Background(), entries, outputDir, WithVoiceID(2))
	require.NoError(t, err)

	// 出力ファイルが項目順の命名で書き出されていること
	for _, name := range []string{"001_先生.wav", "002_私.wav", "002_私_sentence_1.wav"} {
		_, statErr := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, statErr, name)
	}

	// 単語マークアップはアクセント符号化済みの読みを含むこと
	markups := client.received()
	assert.Contains(t, markups, `<phoneme alphabet="yomigana" ph="^せんせ!い">先生</phoneme>`)
	// 例文マークアップは注釈から展開した読みを含むこと（アクセント符号なし）
	assert.Contains(t, markups, `<phoneme alphabet="yomigana" ph="わたしはがくせいです">私は学生です</phoneme>`)
}

func TestEngine_Execute_SplitsLongSentenceReading(t *testing.T) {
	client := &fakeMarkupClient{wav: makeWav(t, []byte{1, 2})}
	engine := testEngine(client)
	outputDir := t.TempDir()

	entries := []vocab.Entry{
		{
			Word:    "学校",
			Reading: "がっこう",
			Sentences: []vocab.Sentence{
				{Text: "がっこうへいきます。ともだちとあそびます。"},
			},
		},
	}

	err := engine.Execute(context.Background(), entries, outputDir, WithMaxReadingRunes(12))
	require.NoError(t, err)

	// 分割された断片ごとに合成が呼ばれる（単語1回 + 例文2断片 = 3回）
	assert.Len(t, client.received(), 3)

	// 断片は結合されて一つのファイルになる
	combined, readErr := os.ReadFile(filepath.Join(outputDir, "001_学校_sentence_1.wav"))
	require.NoError(t, readErr)
	assert.Len(t, combined, WavTotalHeaderSize+4) // 2断片 × 2バイトのオーディオデータ
}

func TestEngine_Execute_AggregatesErrors(t *testing.T) {
	client := &fakeMarkupClient{
		wav:    makeWav(t, []byte{1, 2}),
		failOn: "がくせい",
	}
	engine := testEngine(client)
	outputDir := t.TempDir()

	entries := []vocab.Entry{
		{Word: "先生", Reading: "せんせい", Accent: yomigana.Accent{3}},
		{Word: "学生", Reading: "がくせい", Accent: yomigana.Accent{0}},
	}

	err := engine.Execute(context.Background(), entries, outputDir)

	var batchErr *ErrSynthesisBatch
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.TotalErrors)
	assert.Contains(t, batchErr.Details[0], "学生")

	// 失敗しなかった項目のファイルは書き出されること
	_, statErr := os.Stat(filepath.Join(outputDir, "001_先生.wav"))
	assert.NoError(t, statErr)
}

func TestEngine_Execute_NoEntries(t *testing.T) {
	engine := testEngine(&fakeMarkupClient{wav: makeWav(t, []byte{1})})
	assert.Error(t, engine.Execute(context.Background(), nil, t.TempDir()))
}
