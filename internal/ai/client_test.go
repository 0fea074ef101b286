package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", "")
	c.SetBaseURL(srv.URL)
	return c, srv
}

func TestSummarizeExtractsFirstCandidate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody []byte

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotBody, _ = io.ReadAll(r.Body)

		_, _ = w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "Good day, "}, {"text": "Apex."}]}},
				{"content": {"parts": [{"text": "second candidate"}]}}
			]
		}`))
	})

	got, err := c.Summarize(context.Background(), "Subject: x\nFrom: y\nBody: z\n")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if got != "Good day, Apex." {
		t.Errorf("answer = %q, want first candidate parts concatenated", got)
	}
	if !strings.HasSuffix(gotPath, "/models/gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("key query param = %q", gotKey)
	}

	var req generateRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
		t.Fatalf("request shape = %+v", req)
	}
	prompt := req.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Subject: x") {
		t.Errorf("prompt does not embed the digest: %q", prompt)
	}
	if !strings.Contains(prompt, "Executive Assistant") {
		t.Errorf("prompt missing role framing")
	}
}

func TestSummarizeMissingKeyFailsBeforeNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New("", "")
	c.SetBaseURL(srv.URL)

	_, err := c.Summarize(context.Background(), "digest")

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if cfgErr.Key != CredentialKey {
		t.Errorf("ConfigError.Key = %q", cfgErr.Key)
	}
	if calls != 0 {
		t.Errorf("endpoint was called %d times, want 0", calls)
	}
}

func TestSummarizeNonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Summarize(context.Background(), "digest")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d", apiErr.Status)
	}
}

func TestSummarizeUndecodableResponse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := c.Summarize(context.Background(), "digest")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestSummarizeNoCandidates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := c.Summarize(context.Background(), "digest")

	var emptyErr *EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("err = %v, want EmptyResultError", err)
	}
}

func TestSummarizeNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the request can't connect

	c := New("test-key", "")
	c.SetBaseURL(srv.URL)

	_, err := c.Summarize(context.Background(), "digest")

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
}

func TestSummarizeCustomModelInPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	c := New("k", "gemini-2.5-pro")
	c.SetBaseURL(srv.URL)

	if _, err := c.Summarize(context.Background(), "d"); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !strings.HasSuffix(gotPath, "/models/gemini-2.5-pro:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
}
