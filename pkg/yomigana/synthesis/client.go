package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/go-yomigana/pkg/yomigana/vocab"
)

// ----------------------------------------------------------------------
// クライアント構造体とコンストラクタ
// ----------------------------------------------------------------------

// Client は音声合成エンジンへのAPIリクエストを処理するクライアントです。
// httpkit.Client を利用してリトライ機能を内包します。
type Client struct {
	client *httpkit.Client // リトライ機能付きHTTPクライアント
	apiURL string
}

// NewClient は新しいClientインスタンスを初期化します。
func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		client: httpkit.New(timeout),
		apiURL: apiURL,
	}
}

// ----------------------------------------------------------------------
// ヘルパー: API URLの構築
// ----------------------------------------------------------------------

// buildURL はベースURLとエンドポイントを結合し、エラー処理を行います。
func (c *Client) buildURL(endpoint string) (*url.URL, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("API URLのパース失敗: %w", err)}
	}

	u.Path, err = url.JoinPath(u.Path, endpoint)
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("エンドポイント結合失敗: %w", err)}
	}

	return u, nil
}

// ----------------------------------------------------------------------
// API呼び出しロジック
// ----------------------------------------------------------------------

// RunSynthesis は /synthesis APIに phoneme マークアップを送信し、WAV形式の音声データを返します。
// Accept: audio/wav ヘッダー設定が必須なため、httpkit.DoRequest を基盤として
// リクエストを手動で構築します。
func (c *Client) RunSynthesis(ctx context.Context, markup string, voiceID int) ([]byte, error) {
	const endpoint = "/synthesis"

	// 1. URLとクエリパラメータの構築
	u, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("voice", fmt.Sprintf("%d", voiceID))
	u.RawQuery = q.Encode()

	// 2. リクエストの構築とヘッダー設定
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(markup))
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: fmt.Errorf("リクエスト構築失敗: %w", err)}
	}

	// 合成エンジンに必要なヘッダーを設定
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("Accept", "audio/wav")

	// 3. リクエスト実行
	// c.client.DoRequest() がリトライ、ステータスチェック、ボディ読み取りを処理
	wavData, err := c.client.DoRequest(req)
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: err}
	}

	// 4. データ検証
	if len(wavData) < WavTotalHeaderSize {
		return nil, &ErrInvalidWAVHeader{
			Index:   -1,
			Details: fmt.Sprintf("WAVデータのサイズが短すぎます (%dバイト)", len(wavData)),
		}
	}

	return wavData, nil
}

// GetVoices は /voices APIを呼び出し、合成エンジンが提供する声の一覧を返します。
func (c *Client) GetVoices(ctx context.Context) ([]Voice, error) {
	const endpoint = "/voices"

	u, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	// FetchBytes は GET, リトライ、ステータスチェック、ボディ読み取りを全て処理
	bodyBytes, err := c.client.FetchBytes(ctx, u.String())
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: err}
	}

	var voices []Voice
	if err := json.Unmarshal(bodyBytes, &voices); err != nil {
		return nil, &vocab.ErrInvalidJSON{Details: fmt.Sprintf("%s応答JSONのデコード", endpoint), WrappedErr: err}
	}

	return voices, nil
}

// GetEntries は /entries APIを呼び出し、語彙データセット（JSONバイト列）を返します。
// vocab.EntryClient インターフェースの実装です。
func (c *Client) GetEntries(ctx context.Context) ([]byte, error) {
	const endpoint = "/entries"

	u, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := c.client.FetchBytes(ctx, u.String())
	if err != nil {
		return nil, &ErrAPINetwork{Endpoint: endpoint, WrappedErr: err}
	}

	return bodyBytes, nil
}
