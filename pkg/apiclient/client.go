package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"byaura/pkg/logger"
	"byaura/pkg/metrics"
)

// TokenSource supplies the Authorization header for authenticated calls.
// Ok false means no session is established and the request goes out bare.
type TokenSource interface {
	AuthHeader() (value string, ok bool)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logger.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  log,
	}
}

// Do sends a JSON request and decodes the JSON response into dest. A nil body
// sends no payload, a nil dest discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("istek gövdesi kodlanamadı: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("istek oluşturulamadı: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(req, path, dest)
}

// Upload posts a multipart form with a single "file" part and decodes the
// JSON response into dest.
func (c *Client) Upload(ctx context.Context, path, filename string, r io.Reader, dest interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("dosya alanı oluşturulamadı: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("dosya içeriği okunamadı: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("form kapatılamadı: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("istek oluşturulamadı: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	return c.send(req, path, dest)
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if header, ok := c.tokens.AuthHeader(); ok {
		req.Header.Set("Authorization", header)
	}
}

func (c *Client) send(req *http.Request, endpoint string, dest interface{}) error {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(req.Method, endpoint, "error", time.Since(start))
		c.logger.Error("API isteği gönderilemedi", map[string]interface{}{
			"method":   req.Method,
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	metrics.RecordAPIRequest(req.Method, endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readDetail(resp.Body)
		c.logger.Warn("API isteği reddedildi", map[string]interface{}{
			"method":   req.Method,
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"detail":   detail,
		})
		return &RejectedError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	return nil
}

// readDetail pulls the backend's {"detail": ...} message out of an error
// body, falling back to the raw text when it is not JSON.
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}

	return strings.TrimSpace(string(raw))
}
