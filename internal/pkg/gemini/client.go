// Package gemini drafts announcement text with Google's Gemini REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

	FailedMessage = "Failed to generate content."
	ErrorMessage  = "Error generating content. Please try again."
)

type Config struct {
	APIKey string
	// AccessToken, when set, is sent as an OAuth2 bearer token instead of
	// the API key.
	AccessToken string
	Model       string
	Endpoint    string
	HTTPClient  *http.Client
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.AccessToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		}))
	}

	return &Client{cfg: cfg, http: httpClient, logger: slog.Default()}
}

func (c *Client) configured() bool {
	return c.cfg.APIKey != "" || c.cfg.AccessToken != ""
}

// Prompt is the instruction sent for a topic and tone.
func Prompt(topic, tone string) string {
	return fmt.Sprintf(
		"Write a professional internal company announcement about: \"%s\". The tone should be %s. Keep it concise (under 100 words). Format with clear line breaks.",
		topic, tone,
	)
}

// Placeholder is returned when no credentials are configured.
func Placeholder(topic string) string {
	return fmt.Sprintf(
		"[Mock AI Response] Here is a draft announcement about \"%s\". Please configure your API_KEY to see real AI magic!",
		topic,
	)
}

// GenerateAnnouncement never fails: errors become user-facing messages.
func (c *Client) GenerateAnnouncement(ctx context.Context, topic, tone string) string {
	if !c.configured() {
		c.logger.Warn("gemini api key is missing, returning mock response")
		return Placeholder(topic)
	}

	text, err := c.generate(ctx, Prompt(topic, tone))
	if err != nil {
		c.logger.Error("gemini generate content", "model", c.cfg.Model, "error", err)
		return ErrorMessage
	}
	if text == "" {
		return FailedMessage
	}
	return text
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.AccessToken == "" {
		req.Header.Set("x-goog-api-key", c.cfg.APIKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("generate request status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload generateResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	if len(payload.Candidates) == 0 {
		return "", nil
	}

	// only the first candidate is used
	var sb strings.Builder
	for _, p := range payload.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
