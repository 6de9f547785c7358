package llm

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/truthos/meeting-intelligence/pkg/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.LLM.GroqAPIKey = "test-key"
	cfg.LLM.GroqBaseURL = baseURL
	cfg.LLM.GroqModel = "test-model"
	return NewClient(cfg)
}

func TestComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if req.Temperature != 0 {
			t.Fatalf("temperature must be pinned to 0, got %v", req.Temperature)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Fatal("response_format json_object not requested")
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"ok":true}`}},
			},
		})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	out, err := client.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestComplete_StatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	_, err := client.Complete(context.Background(), "s", "u")

	var statusErr *StatusError
	if !stdErrors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests || !statusErr.Retryable() {
		t.Fatalf("429 must be retryable, got %+v", statusErr)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)
	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("empty choices must be an error")
	}
}

func TestStatusErrorRetryable(t *testing.T) {
	cases := map[int]bool{
		400: false,
		401: false,
		404: false,
		429: true,
		500: true,
		503: true,
	}
	for code, want := range cases {
		e := &StatusError{StatusCode: code}
		if e.Retryable() != want {
			t.Fatalf("status %d: retryable = %v, want %v", code, e.Retryable(), want)
		}
	}
}
