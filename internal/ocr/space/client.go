package space

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"vietscan/internal/config"
	"vietscan/internal/port"
)

const apiURL = "https://api.ocr.space/parse/image"

// Client implements port.TextRecognizer using the OCR.space parse API.
type Client struct {
	apiKey            string
	language          string
	engine            int
	detectOrientation bool
	endpoint          string
	client            *http.Client
}

// NewClient creates an OCR.space client from provider config.
func NewClient(cfg *config.OCRConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return newClient(cfg, endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.OCRConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OCRConfig, endpoint string) *Client {
	language := cfg.Language
	if language == "" {
		language = "eng"
	}
	engine := cfg.Engine
	if engine == 0 {
		engine = 2
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:            cfg.APIKey,
		language:          language,
		engine:            engine,
		detectOrientation: cfg.DetectOrientation,
		endpoint:          endpoint,
		client:            &http.Client{Timeout: timeout},
	}
}

// apiResponse models the OCR.space parse response.
type apiResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

// Recognize uploads the stored image and returns the recognized text.
func (c *Client) Recognize(ctx context.Context, input port.RecognizeInput) (string, error) {
	f, err := os.Open(input.FilePath)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer func() { _ = f.Close() }()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	_ = w.WriteField("isOverlayRequired", "false")
	_ = w.WriteField("apikey", c.apiKey)
	_ = w.WriteField("language", c.language)
	if c.detectOrientation {
		_ = w.WriteField("detectOrientation", "true")
	}
	_ = w.WriteField("scale", "true")
	_ = w.WriteField("OCREngine", strconv.Itoa(c.engine))

	part, err := w.CreateFormFile("file", input.FileName)
	if err != nil {
		return "", fmt.Errorf("building form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling OCR.space API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR.space API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("OCR.space processing error: %s", string(parsed.ErrorMessage))
	}
	if len(parsed.ParsedResults) == 0 {
		return "", fmt.Errorf("empty response from OCR.space: no parsed results")
	}

	texts := make([]string, 0, len(parsed.ParsedResults))
	for _, r := range parsed.ParsedResults {
		texts = append(texts, r.ParsedText)
	}
	return strings.Join(texts, "\n"), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
