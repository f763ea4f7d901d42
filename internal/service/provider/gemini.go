package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rokhoon/geo-briefing/internal/config"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini calls the generateContent REST endpoint directly.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	sleep   func(time.Duration)
}

// NewGemini returns a Gemini client for the given credential and model.
func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		sleep:   time.Sleep,
	}
}

// Name identifies the provider in result records and reports.
func (g *Gemini) Name() string { return "gemini" }

// Ready reports a configuration error when the credential is unusable.
func (g *Gemini) Ready() error {
	if config.IsPlaceholder(g.apiKey) {
		return fmt.Errorf("GEMINI_API_KEY is missing or still a placeholder")
	}
	return nil
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends one question, with the persona context as system instruction.
// Rate limits are retried up to maxAttempts with exponential backoff; any
// other failure returns immediately as sentinel text.
func (g *Gemini) Ask(ctx context.Context, question string, personaPrompts []string) string {
	if err := g.Ready(); err != nil {
		return "⚠️ Gemini API key not set. Check the GEMINI_API_KEY environment variable."
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: question}}}},
	}
	if ctxText := personaContext(personaPrompts); ctxText != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: ctxText}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Sprintf("❌ Error from Gemini: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, status, err := g.call(ctx, url, payload)
		if err == nil {
			return text
		}
		if status == http.StatusTooManyRequests && attempt < maxAttempts-1 {
			g.sleep(retryDelay(attempt))
			continue
		}
		return fmt.Sprintf("❌ Error from Gemini: %v", err)
	}
	// Unreachable: the final attempt always returns above.
	return "❌ Error from Gemini: retries exhausted"
}

func (g *Gemini) call(ctx context.Context, url string, payload []byte) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", resp.StatusCode, fmt.Errorf("gemini API %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", resp.StatusCode, err
	}
	if len(gr.Candidates) == 0 {
		return "", resp.StatusCode, fmt.Errorf("empty gemini response")
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), resp.StatusCode, nil
}
