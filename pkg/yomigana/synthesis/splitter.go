package synthesis

// ----------------------------------------------------------------------
// 読み分割ロジック
// ----------------------------------------------------------------------

// isPunctuationBoundary は分割候補となる句読点かどうかを判定します。
func isPunctuationBoundary(r rune) bool {
	return r == '。' || r == '、' || r == '！' || r == '？'
}

// SplitReading は長い読み文字列を maxRunes 文字以内の断片に分割します。
//
// 断片境界はできるだけ句読点（。、！？）の直後に置き、制限内に句読点が
// 見つからない場合は maxRunes で強制分割します。文字数は rune 単位です。
// maxRunes が 0 以下の場合は分割せず全体を一断片として返します。
func SplitReading(reading string, maxRunes int) []string {
	if reading == "" {
		return nil
	}
	if maxRunes <= 0 {
		return []string{reading}
	}

	runes := []rune(reading)
	parts := make([]string, 0, len(runes)/maxRunes+1)

	for len(runes) > 0 {
		if len(runes) <= maxRunes {
			parts = append(parts, string(runes))
			break
		}

		// 制限内で最も後ろの句読点を探す
		bestSplitIndex := -1
		for i := 0; i < maxRunes; i++ {
			if isPunctuationBoundary(runes[i]) {
				bestSplitIndex = i + 1 // 記号の直後で切る
			}
		}

		if bestSplitIndex <= 0 {
			// 句読点が見つからない場合は強制分割
			bestSplitIndex = maxRunes
		}

		parts = append(parts, string(runes[:bestSplitIndex]))
		runes = runes[bestSplitIndex:]
	}

	return parts
}
