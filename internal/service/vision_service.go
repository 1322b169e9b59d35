package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ledgerlens/internal/models"
	"ledgerlens/pkg/config"

	"go.uber.org/zap"
)

// ExtractionRequest is one immutable call to the vision model: image bytes
// (or a hosted URL) plus the document kind that selects the prompt.
type ExtractionRequest struct {
	Kind      models.DocumentKind
	ImageData []byte
	MediaType string
	ImageURL  string
}

// VisionService wraps the OpenAI-compatible chat-completions endpoint of the
// vision model. One request in, raw textual content out. No retries: a failed
// call propagates immediately.
type VisionService struct {
	cfg        *config.QwenConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewVisionService(cfg *config.QwenConfig, logger *zap.Logger) *VisionService {
	// No client timeout on purpose; cancellation is the caller's job via ctx.
	return &VisionService{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Extract sends one image plus the extraction prompt for the given kind and
// returns the model's raw textual content. Fails with ErrNotConfigured before
// any network attempt when the endpoint or credential is unset, with
// *UpstreamError on transport or non-success status, and with
// ErrEmptyResponse when the model returns no content.
func (s *VisionService) Extract(ctx context.Context, req ExtractionRequest) (string, error) {
	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = fmt.Sprintf("data:%s;base64,%s", req.MediaType, base64.StdEncoding.EncodeToString(req.ImageData))
	}

	userContent := []map[string]interface{}{
		{
			"type":      "image_url",
			"image_url": map[string]string{"url": imageURL},
		},
		{
			"type": "text",
			"text": BuildExtractionPrompt(req.Kind),
		},
	}

	messages := []map[string]interface{}{
		{
			"role": "system",
			"content": []map[string]interface{}{
				{"type": "text", "text": systemInstruction(req.Kind)},
			},
		},
		{
			"role":    "user",
			"content": userContent,
		},
	}

	content, err := s.chatCompletion(ctx, messages)
	if err != nil {
		return "", err
	}

	s.logger.Info("Vision extraction completed",
		zap.String("kind", string(req.Kind)),
		zap.Int("content_length", len(content)),
	)
	return content, nil
}

// Complete sends a text-only prompt (no image) and returns the raw content.
// Used by the tax relief classifier.
func (s *VisionService) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []map[string]interface{}{
		{"role": "system", "content": system},
		{"role": "user", "content": prompt},
	}
	return s.chatCompletion(ctx, messages)
}

func (s *VisionService) chatCompletion(ctx context.Context, messages []map[string]interface{}) (string, error) {
	if s.cfg.APIURL == "" || s.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	requestBody := map[string]interface{}{
		"model":       s.cfg.Model,
		"messages":    messages,
		"temperature": s.cfg.Temperature,
		"max_tokens":  s.cfg.MaxTokens,
		"top_p":       0.9,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return chatResp.Choices[0].Message.Content, nil
}
