package yomigana

// ----------------------------------------------------------------------
// モーラ分割
// ----------------------------------------------------------------------

// ToMorae は仮名の読みを発音単位（モーラ）の列に分割します。
//
// 文字（rune）単位で左から走査し、次の文字が小書き仮名（ゃゅょぁぃぅぇぉ等）
// であれば現在の文字と融合して一つの二文字モーラにします。促音 っ/ッ は
// 融合対象外で、常に単独モーラです。
//
// 下流のアクセント位置計算がインデックスでランダムアクセスするため、
// 結果は遅延列ではなく完全に実体化したスライスで返します。
// 空文字列を含むどんな入力でも失敗しません。
func ToMorae(reading string) []string {
	runes := []rune(reading)
	morae := make([]string, 0, len(runes))

	for i := 0; i < len(runes); {
		if i+1 < len(runes) && isSmallKana(runes[i+1]) {
			morae = append(morae, string(runes[i:i+2]))
			i += 2
			continue
		}
		morae = append(morae, string(runes[i]))
		i++
	}

	return morae
}

func isSmallKana(r rune) bool {
	_, ok := smallKanaSet[r]
	return ok
}
