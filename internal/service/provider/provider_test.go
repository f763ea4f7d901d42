package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func recordedSleep(delays *[]time.Duration) func(time.Duration) {
	return func(d time.Duration) {
		*delays = append(*delays, d)
	}
}

func TestPersonaContext(t *testing.T) {
	if got := personaContext(nil); got != "" {
		t.Fatalf("expected empty context for no prompts, got %q", got)
	}

	got := personaContext([]string{"first profile", "second profile"})
	if !strings.Contains(got, "first profile\n\nsecond profile") {
		t.Fatalf("prompts not joined with double newline: %q", got)
	}
	if !strings.HasPrefix(got, personaPreamble) {
		t.Fatalf("context missing preamble: %q", got)
	}
}

func TestGeminiRetriesOnRateLimit(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var delays []time.Duration
	g := &Gemini{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: srv.URL,
		client:  srv.Client(),
		sleep:   recordedSleep(&delays),
	}

	answer := g.Ask(context.Background(), "q", nil)

	if attempts != maxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxAttempts, attempts)
	}
	if want := []time.Duration{2 * time.Second, 4 * time.Second}; len(delays) != len(want) ||
		delays[0] != want[0] || delays[1] != want[1] {
		t.Fatalf("unexpected backoff delays: %v", delays)
	}
	if !strings.HasPrefix(answer, "❌ Error from Gemini") {
		t.Fatalf("expected error sentinel, got %q", answer)
	}
}

func TestGeminiDoesNotRetryOtherErrors(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var delays []time.Duration
	g := &Gemini{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: srv.URL,
		client:  srv.Client(),
		sleep:   recordedSleep(&delays),
	}

	answer := g.Ask(context.Background(), "q", nil)

	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
	if len(delays) != 0 {
		t.Fatalf("expected no backoff, got %v", delays)
	}
	if !strings.HasPrefix(answer, "❌ Error from Gemini") {
		t.Fatalf("expected error sentinel, got %q", answer)
	}
}

func TestGeminiSendsPersonaContext(t *testing.T) {
	var captured geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "hello"}}}},
			},
		})
	}))
	defer srv.Close()

	g := &Gemini{
		apiKey:  "test-key",
		model:   "gemini-2.0-flash",
		baseURL: srv.URL,
		client:  srv.Client(),
		sleep:   func(time.Duration) {},
	}

	answer := g.Ask(context.Background(), "the question", []string{"asker profile"})

	if answer != "hello" {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if captured.SystemInstruction == nil {
		t.Fatal("expected systemInstruction to be set")
	}
	if !strings.Contains(captured.SystemInstruction.Parts[0].Text, "asker profile") {
		t.Fatalf("persona prompt missing from system instruction: %+v", captured.SystemInstruction)
	}
	if captured.Contents[0].Parts[0].Text != "the question" {
		t.Fatalf("unexpected question payload: %+v", captured.Contents)
	}
}

func TestGeminiMissingKeyReturnsWarning(t *testing.T) {
	g := NewGemini("PASTE_YOUR_KEY_HERE", "gemini-2.0-flash")

	if err := g.Ready(); err == nil {
		t.Fatal("expected Ready to fail for placeholder key")
	}

	answer := g.Ask(context.Background(), "q", nil)
	if !strings.HasPrefix(answer, "⚠️") {
		t.Fatalf("expected warning sentinel, got %q", answer)
	}
}

func TestGPTRetriesOnRateLimit(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "rate_limit_exceeded"},
		})
	}))
	defer srv.Close()

	var delays []time.Duration
	g := newGPTWithBaseURL("test-key", "gpt-4o", srv.URL+"/v1")
	g.sleep = recordedSleep(&delays)

	answer := g.Ask(context.Background(), "q", nil)

	if attempts != maxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxAttempts, attempts)
	}
	if len(delays) != 2 || delays[0] != 2*time.Second || delays[1] != 4*time.Second {
		t.Fatalf("unexpected backoff delays: %v", delays)
	}
	if !strings.HasPrefix(answer, "❌ Error from OpenAI") {
		t.Fatalf("expected error sentinel, got %q", answer)
	}
}

func TestGPTDoesNotRetryOtherErrors(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "bad request", "type": "invalid_request_error"},
		})
	}))
	defer srv.Close()

	g := newGPTWithBaseURL("test-key", "gpt-4o", srv.URL+"/v1")
	g.sleep = func(time.Duration) { t.Error("unexpected sleep") }

	answer := g.Ask(context.Background(), "q", nil)

	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
	if !strings.HasPrefix(answer, "❌ Error from OpenAI") {
		t.Fatalf("expected error sentinel, got %q", answer)
	}
}

func TestGPTMissingKeyReturnsWarning(t *testing.T) {
	g := NewGPT("", "gpt-4o")

	if err := g.Ready(); err == nil {
		t.Fatal("expected Ready to fail for empty key")
	}

	answer := g.Ask(context.Background(), "q", nil)
	if !strings.HasPrefix(answer, "⚠️") {
		t.Fatalf("expected warning sentinel, got %q", answer)
	}
}
