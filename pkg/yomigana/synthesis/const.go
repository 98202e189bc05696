package synthesis

import "time"

// ----------------------------------------------------------------------
// エンジン処理定数
// ----------------------------------------------------------------------

const (
	// DefaultMaxParallelItems は同時に合成する語彙項目数の上限です。
	DefaultMaxParallelItems = 6
	// DefaultItemTimeout は語彙項目一件あたりの処理タイムアウトです。
	DefaultItemTimeout = 300 * time.Second
	// DefaultRequestsPerSecond は合成APIへのリクエストレート上限です。
	DefaultRequestsPerSecond = 2.0
	// DefaultVoiceID はオプション未指定時に使用する声IDです。
	DefaultVoiceID = 1
)

// ----------------------------------------------------------------------
// 読み分割定数
// ----------------------------------------------------------------------

const (
	// MaxReadingRuneLength は合成エンジンに一度に渡す読みの最大文字数の目安です。
	// これを超える例文の読みは句読点境界で分割してから合成します。
	MaxReadingRuneLength = 200
)

// ----------------------------------------------------------------------
// WAV ファイル定数
// ----------------------------------------------------------------------

const (
	WavTotalHeaderSize  = 44
	DataChunkHeaderSize = 8  // "data" + data_size (8 bytes)
	FmtChunkSize        = 16 // format sub-chunk data size (16 bytes)

	// RIFF/WAVE チャンク (12 bytes)
	RiffChunkIDSize    = 4                                                 // "RIFF"
	RiffChunkSizeField = 4                                                 // File size - 8
	WaveIDSize         = 4                                                 // "WAVE"
	WavRiffHeaderSize  = RiffChunkIDSize + RiffChunkSizeField + WaveIDSize // 12 bytes

	// fmt チャンク (24 bytes)
	FmtChunkIDSize    = 4                                                 // "fmt "
	FmtChunkSizeField = 4                                                 // 16
	WavFmtChunkSize   = FmtChunkIDSize + FmtChunkSizeField + FmtChunkSize // 24 bytes

	// data チャンク (8 bytes)
	DataChunkIDSize = 4 // "data"

	// オフセット (audio.go のロジックで利用)
	RiffChunkSizeOffset = 4                                   // ファイルサイズが書き込まれる位置
	DataChunkOffset     = WavRiffHeaderSize + WavFmtChunkSize // "data" チャンクの開始位置 (12 + 24 = 36)
	DataChunkSizeOffset = DataChunkOffset + DataChunkIDSize   // data チャンクのサイズが書き込まれる位置 (40)
)
