package synthesis

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------
// API 通信・応答エラー (client.go で利用)
// ----------------------------------------------------------------------

// ErrAPINetwork はAPI呼び出しにおける通信エラーやリトライ後の最終失敗を示すカスタムエラー型です。
type ErrAPINetwork struct {
	Endpoint   string
	WrappedErr error
}

func (e *ErrAPINetwork) Error() string {
	return fmt.Sprintf("API通信エラー (%s): %v", e.Endpoint, e.WrappedErr)
}

func (e *ErrAPINetwork) Unwrap() error {
	return e.WrappedErr
}

// ----------------------------------------------------------------------
// データ処理エラー (audio.go で利用)
// ----------------------------------------------------------------------

// ErrInvalidWAVHeader はWAVデータが短すぎる、またはヘッダーの記載とデータ長が一致しないなど、
// ヘッダーに問題があることを示します。
type ErrInvalidWAVHeader struct {
	Index   int // エラーが発生したWAVセグメントのインデックス
	Details string
}

func (e *ErrInvalidWAVHeader) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("WAVデータ #%d のヘッダーが無効です: %s", e.Index, e.Details)
	}
	return fmt.Sprintf("WAVデータ結合時のエラー: %s", e.Details)
}

// ErrNoAudioData は結合すべきWAVデータがないことを示します。
type ErrNoAudioData struct{}

func (e *ErrNoAudioData) Error() string {
	return "処理対象となる有効なオーディオデータがありません"
}

// ----------------------------------------------------------------------
// バッチ処理エラー (engine.go で利用)
// ----------------------------------------------------------------------

// ErrSynthesisBatch は語彙音声バッチ処理全体で発生した複数のエラーをラップするカスタムエラー型です。
type ErrSynthesisBatch struct {
	TotalErrors int
	Details     []string
}

func (e *ErrSynthesisBatch) Error() string {
	return fmt.Sprintf("語彙音声バッチ処理中に %d 件のエラーが発生しました:\n- %s",
		e.TotalErrors, strings.Join(e.Details, "\n- "))
}
