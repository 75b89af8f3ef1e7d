package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/princeprakhar/dealership-reviews/internal/config"
)

type SentimentService struct {
	baseURL string
	client  *http.Client
}

type SentimentResponse struct {
	Sentiment string `json:"sentiment"`
}

func NewSentimentService(cfg *config.Config) *SentimentService {
	return &SentimentService{
		baseURL: strings.TrimRight(cfg.SentimentAnalyzerURL, "/"),
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// Analyze asks the analyzer microservice to label text.
func (s *SentimentService) Analyze(ctx context.Context, text string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("sentiment analyzer url not configured")
	}

	requestURL := fmt.Sprintf("%s/analyze/%s", s.baseURL, url.PathEscape(text))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sentiment analyzer returned status: %d", resp.StatusCode)
	}

	var result SentimentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if result.Sentiment == "" {
		return "", fmt.Errorf("sentiment missing from analyzer response")
	}

	return result.Sentiment, nil
}
