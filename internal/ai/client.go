// Package ai is the client for the Gemini generateContent endpoint
// used to turn a formatted inbox digest into a briefing.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// CredentialKey names the API key in the keyring and environment.
	CredentialKey = "GEMINI_API_KEY"
)

// Client sends exactly one synchronous request per Summarize call.
// There is no retry, streaming, or multi-turn state.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a Gemini client. An empty modelName selects the default
// model. The key is validated lazily so a missing credential surfaces
// as a ConfigError on the first Summarize call, before any network I/O.
func New(apiKey, modelName string) *Client {
	if modelName == "" {
		modelName = defaultModel
	}

	return &Client{
		apiKey:  apiKey,
		model:   modelName,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SetBaseURL points the client at a custom endpoint root, primarily
// for tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

// content mirrors the request/response content object:
// { parts: [ { text: ... } ] }.
type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// Summarize embeds the digest in the briefing prompt, posts it to the
// generateContent endpoint with the API key as a query parameter, and
// returns the first candidate's answer with its text parts
// concatenated in order.
func (c *Client) Summarize(ctx context.Context, digest string) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigError{Key: CredentialKey}
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: buildPrompt(digest)}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &ParseError{Err: err}
	}

	if len(result.Candidates) == 0 {
		return "", &EmptyResultError{}
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}
