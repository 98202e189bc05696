package synthesis

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ----------------------------------------------------------------------
// WAV 結合ロジック
// ----------------------------------------------------------------------

// CombineWavData は複数のWAVデータ（バイトスライス）を結合し、
// 正しいヘッダーを持つ単一のWAVファイル（バイトスライス）を生成します。
// フォーマット情報（サンプリングレート、チャンネル数など）は最初のWAVから抽出します。
// 分割合成された例文音声の断片を一つのファイルにまとめるために使用します。
func CombineWavData(wavDataList [][]byte) ([]byte, error) {
	if len(wavDataList) == 0 {
		return nil, &ErrNoAudioData{}
	}

	// 1. 最初のWAVからフォーマット情報を抽出
	formatHeader, audioData, err := extractAudioData(wavDataList[0], 0)
	if err != nil {
		return nil, fmt.Errorf("最初のWAVファイルの解析に失敗しました: %w", err)
	}

	// 2. すべてのオーディオデータを連結
	var audioDataWriter bytes.Buffer
	totalAudioSize := len(audioData)
	audioDataWriter.Write(audioData)

	for i := 1; i < len(wavDataList); i++ {
		// メタデータチャンク（LISTなど）をスキップし、純粋なオーディオデータのみを抽出
		_, currentAudioData, err := extractAudioData(wavDataList[i], i+1)
		if err != nil {
			return nil, fmt.Errorf("WAVファイル #%d の解析に失敗しました: %w", i+1, err)
		}

		audioDataWriter.Write(currentAudioData)
		totalAudioSize += len(currentAudioData)
	}

	// 3. 結合されたデータと最初のフォーマットヘッダーから新しいWAVファイルを構築
	return buildCombinedWav(formatHeader, audioDataWriter.Bytes(), totalAudioSize), nil
}

// ----------------------------------------------------------------------
// 内部ヘルパー関数
// ----------------------------------------------------------------------

// extractAudioData はWAVファイルバイトスライスからフォーマットヘッダー情報と
// オーディオデータ部分を抽出します。LISTチャンクなどのメタデータをスキップし、
// dataチャンクを動的に探します。
func extractAudioData(wavBytes []byte, index int) (formatHeader []byte, audioData []byte, err error) {
	// RIFF + fmt ヘッダー (36バイト) の存在確認
	if len(wavBytes) < DataChunkOffset {
		return nil, nil, &ErrInvalidWAVHeader{
			Index:   index,
			Details: fmt.Sprintf("WAVファイルサイズが短すぎます (ヘッダー不足: %dバイト)", len(wavBytes)),
		}
	}

	// フォーマットヘッダーを抽出 (0から36バイト目まで: RIFF + fmt)
	formatHeader = wavBytes[0:DataChunkOffset]

	// data チャンクの動的な探索は fmt チャンクの直後 (36バイト目) から開始
	offset := DataChunkOffset
	dataChunkFound := false

	for offset < len(wavBytes) {
		// チャンクヘッダー (チャンクID 4 + サイズ 4 = 8バイト) の読み込みチェック
		if offset+DataChunkHeaderSize > len(wavBytes) {
			break
		}

		chunkID := string(wavBytes[offset : offset+DataChunkIDSize])
		chunkSize := binary.LittleEndian.Uint32(wavBytes[offset+DataChunkIDSize : offset+DataChunkHeaderSize])

		if chunkID == "data" {
			dataChunkFound = true

			audioDataStart := offset + DataChunkHeaderSize
			audioDataEnd := audioDataStart + int(chunkSize)

			if audioDataEnd > len(wavBytes) {
				return nil, nil, &ErrInvalidWAVHeader{
					Index:   index,
					Details: "dataチャンクのデータ長がファイルサイズを超過しています",
				}
			}

			audioData = wavBytes[audioDataStart:audioDataEnd]
			break
		}

		// data チャンクでない場合 (LIST, fact など) はスキップ
		offset += DataChunkHeaderSize + int(chunkSize)

		// パディングバイトの考慮 (奇数長のチャンクデータの後)
		if chunkSize%2 != 0 {
			offset++
		}
	}

	if !dataChunkFound {
		return nil, nil, &ErrInvalidWAVHeader{
			Index:   index,
			Details: "WAVファイル内に 'data' チャンクが見つかりませんでした",
		}
	}

	return formatHeader, audioData, nil
}

// buildCombinedWav はフォーマットヘッダー情報と結合されたオーディオデータから、
// 正しいヘッダーを持つ単一のWAVファイルを構築します。
func buildCombinedWav(formatHeader, combinedAudioData []byte, totalAudioSize int) []byte {
	// RIFFチャンクサイズは (totalAudioSize + WavTotalHeaderSize) - 8
	fileSize := totalAudioSize + WavTotalHeaderSize - (RiffChunkIDSize + WaveIDSize)

	combinedWav := make([]byte, WavTotalHeaderSize+totalAudioSize)
	copy(combinedWav, formatHeader)

	// フォーマットヘッダーには data チャンクIDが含まれないため書き込む
	copy(combinedWav[DataChunkOffset:], "data")

	// RIFFチャンクサイズ (File Size - 8) の更新 (4-8バイト目)
	binary.LittleEndian.PutUint32(combinedWav[RiffChunkSizeOffset:RiffChunkSizeOffset+4], uint32(fileSize))

	// dataチャンクサイズ (Audio Data Size) の更新 (40-44バイト目)
	binary.LittleEndian.PutUint32(combinedWav[DataChunkSizeOffset:DataChunkSizeOffset+4], uint32(totalAudioSize))

	// オーディオデータ本体をコピー
	copy(combinedWav[WavTotalHeaderSize:], combinedAudioData)

	return combinedWav
}
