package vocab

import "fmt"

// ErrInvalidJSON は語彙データが期待されるJSON形式でなかったことを示します。
type ErrInvalidJSON struct {
	Details    string
	WrappedErr error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("不正なJSONデータ: %s (詳細: %v)", e.Details, e.WrappedErr)
}

// ErrMissingRequiredField はデータセットに必要なフィールドが見つからないことを示します。
type ErrMissingRequiredField struct {
	Field   string
	Context string // 例: "語彙データロード時"
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("%sで必須フィールド '%s' が見つかりません", e.Context, e.Field)
}
