package synthesis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitReading(t *testing.T) {
	tests := []struct {
		name     string
		reading  string
		maxRunes int
		expected []string
	}{
		{
			name:     "制限内の読みは分割しない",
			reading:  "わたしはがくせいです。",
			maxRunes: 20,
			expected: []string{"わたしはがくせいです。"},
		},
		{
			name:     "句読点の直後で分割する",
			reading:  "こんにちは、せんせい。きょうはいいてんきですね。",
			maxRunes: 15,
			expected: []string{"こんにちは、せんせい。", "きょうはいいてんきですね。"},
		},
		{
			name:     "制限内で最も後ろの句読点を選ぶ",
			reading:  "はい、そうです。でも、ちがいます。",
			maxRunes: 12,
			expected: []string{"はい、そうです。でも、", "ちがいます。"},
		},
		{
			name:     "句読点がなければ強制分割",
			reading:  "あいうえおかきくけこ",
			maxRunes: 4,
			expected: []string{"あいうえ", "おかきく", "けこ"},
		},
		{
			name:     "空文字列は断片なし",
			reading:  "",
			maxRunes: 10,
			expected: nil,
		},
		{
			name:     "上限ゼロ以下は分割なし",
			reading:  "ながいよみ",
			maxRunes: 0,
			expected: []string{"ながいよみ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitReading(tt.reading, tt.maxRunes))
		})
	}
}

// 分割後の断片を連結すると元の読みに戻ること（文字の欠落がないこと）。
func TestSplitReading_Lossless(t *testing.T) {
	reading := strings.Repeat("あいう、えおかきくけこ。", 30)
	parts := SplitReading(reading, MaxReadingRuneLength)

	assert.Greater(t, len(parts), 1)
	assert.Equal(t, reading, strings.Join(parts, ""))
	for _, part := range parts {
		assert.LessOrEqual(t, len([]rune(part)), MaxReadingRuneLength)
	}
}
