package vocab

import (
	"context"
	"encoding/json"
	"log/slog"
)

// ----------------------------------------------------------------------
// ロードロジック
// ----------------------------------------------------------------------

// LoadEntries はデータセットエンドポイントから語彙データを取得し、Data を構築します。
func LoadEntries(ctx context.Context, client EntryClient) (*Data, error) {
	bodyBytes, err := client.GetEntries(ctx)
	if err != nil {
		return nil, err
	}

	data, err := ParseEntries(bodyBytes)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "語彙データセットが正常にロードされました", "entries_count", len(data.Entries))
	return data, nil
}

// ParseEntries は語彙データセットのJSONバイト列をデコードし、Data を構築します。
//
// word または reading を欠くエントリは警告ログを出してスキップします
// （不完全なデータ一件でロード全体を止めない）。有効なエントリが一件も
// 残らない場合のみエラーを返します。
func ParseEntries(bodyBytes []byte) (*Data, error) {
	var raw []Entry
	if err := json.Unmarshal(bodyBytes, &raw); err != nil {
		return nil, &ErrInvalidJSON{Details: "語彙データセット", WrappedErr: err}
	}

	data := &Data{
		Entries: make([]Entry, 0, len(raw)),
		byWord:  make(map[string]int),
	}

	for i, entry := range raw {
		if entry.Word == "" || entry.Reading == "" {
			slog.Warn("不完全な語彙エントリをスキップします",
				"index", i, "word", entry.Word, "reading", entry.Reading)
			continue
		}

		// 同一表記の重複は先着を優先（データセットの並び順が正）
		if _, exists := data.byWord[entry.Word]; exists {
			slog.Warn("重複する語彙エントリをスキップします", "index", i, "word", entry.Word)
			continue
		}

		data.byWord[entry.Word] = len(data.Entries)
		data.Entries = append(data.Entries, entry)
	}

	if len(data.Entries) == 0 {
		return nil, &ErrMissingRequiredField{
			Field:   "word / reading",
			Context: "語彙データロード時",
		}
	}

	return data, nil
}
