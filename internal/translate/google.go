package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	// DefaultGoogleURL is the public gtx endpoint used by browser extensions.
	DefaultGoogleURL = "https://translate.googleapis.com/translate_a/single"
	// DefaultGoogleTimeout guards against a stalled connection. The service
	// applies its own, usually tighter, per-request limit on top.
	DefaultGoogleTimeout = 2 * time.Minute

	googleUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// GoogleClient implements Translator using the free Google Translate endpoint.
type GoogleClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewGoogleClient creates a new Google client. An empty endpoint selects
// DefaultGoogleURL.
func NewGoogleClient(endpoint string, logger *logrus.Logger) *GoogleClient {
	if endpoint == "" {
		endpoint = DefaultGoogleURL
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &GoogleClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: DefaultGoogleTimeout,
		},
		logger: logger,
	}
}

// Name returns the engine name
func (c *GoogleClient) Name() string {
	return "Google Translate"
}

// Translate translates text with the gtx endpoint
func (c *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", googleLanguageCode(sourceLang))
	params.Set("tl", googleLanguageCode(targetLang))
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", googleUserAgent)
	req.Header.Set("Accept", "*/*")

	c.logger.WithFields(logrus.Fields{
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with Google")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
		}).Error("Google returned non-OK status")
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("decode response: invalid JSON")
	}

	// [[["Bonjour","Hello",null,null,10], ...], null, "en", ...]
	var b strings.Builder
	for _, segment := range gjson.GetBytes(body, "0.#.0").Array() {
		b.WriteString(segment.String())
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("empty translation returned")
	}

	return b.String(), nil
}

// googleLanguageCode maps ISO 639-1 codes to Google's, which needs a region
// for Chinese.
func googleLanguageCode(code string) string {
	if code == "zh" {
		return "zh-CN"
	}
	return code
}
