package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"insightd/internal/models"
)

// TextClassifier is the contract the orchestrator needs from the
// remote inference API.
type TextClassifier interface {
	Classify(ctx context.Context, text, modelID string) ([]models.LabelScore, error)
}

// HuggingFaceClient calls hosted text-classification models. Each call
// posts {"inputs": text} and gets back a per-label score distribution,
// either flat or wrapped in one extra array level depending on the
// model.
type HuggingFaceClient struct {
	Token   string
	BaseURL string
	Client  *http.Client
}

func NewHuggingFaceClient(token, baseURL string, timeout time.Duration) *HuggingFaceClient {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HuggingFaceClient{
		Token:   token,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// Classify runs one model against the text and returns its raw label
// scores. Upstream statuses map onto the error taxonomy: 429 is
// ErrRateLimited, 403 is ErrQuotaExceeded, any other non-2xx is a
// RemoteError, and an unusable payload is ErrMalformedResponse.
func (c *HuggingFaceClient) Classify(ctx context.Context, text, modelID string) ([]models.LabelScore, error) {
	jsonBody, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/"+modelID,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("model %s: %w", modelID, models.ErrRateLimited)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("model %s: %w", modelID, models.ErrQuotaExceeded)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("model %s: %w", modelID, &models.RemoteError{Status: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	scores, err := parseLabelScores(body)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", modelID, err)
	}
	return scores, nil
}

// parseLabelScores normalizes the two response shapes both target
// models are known to return: [{label, score}, ...] and the same array
// nested one level deep.
func parseLabelScores(body []byte) ([]models.LabelScore, error) {
	var flat []models.LabelScore
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var nested [][]models.LabelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	return nil, models.ErrMalformedResponse
}
