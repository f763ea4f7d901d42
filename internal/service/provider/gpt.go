package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rokhoon/geo-briefing/internal/config"
)

const gptSystemFraming = "You are a helpful assistant providing daily briefings."

// GPT calls the OpenAI chat completions API.
type GPT struct {
	apiKey string
	model  string
	client *openai.Client
	sleep  func(time.Duration)
}

// NewGPT returns a GPT client for the given credential and model.
func NewGPT(apiKey, model string) *GPT {
	return &GPT{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
		sleep:  time.Sleep,
	}
}

// newGPTWithBaseURL points the client at an alternate endpoint. Used by
// tests to stand in a local server.
func newGPTWithBaseURL(apiKey, model, baseURL string) *GPT {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &GPT{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
		sleep:  time.Sleep,
	}
}

// Name identifies the provider in result records and reports.
func (g *GPT) Name() string { return "gpt" }

// Ready reports a configuration error when the credential is unusable.
func (g *GPT) Ready() error {
	if config.IsPlaceholder(g.apiKey) {
		return fmt.Errorf("OPENAI_API_KEY is missing or still a placeholder")
	}
	return nil
}

// Ask sends one question with the persona context folded into the system
// message. Rate limits are retried up to maxAttempts with exponential
// backoff; any other failure returns immediately as sentinel text.
func (g *GPT) Ask(ctx context.Context, question string, personaPrompts []string) string {
	if err := g.Ready(); err != nil {
		return "⚠️ OpenAI API key not set. Check the OPENAI_API_KEY environment variable."
	}

	system := gptSystemFraming
	if ctxText := personaContext(personaPrompts); ctxText != "" {
		system += "\n\n" + ctxText
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := g.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				return "❌ Error from OpenAI: empty response"
			}
			return resp.Choices[0].Message.Content
		}
		if isRateLimited(err) && attempt < maxAttempts-1 {
			g.sleep(retryDelay(attempt))
			continue
		}
		return fmt.Sprintf("❌ Error from OpenAI: %v", err)
	}
	// Unreachable: the final attempt always returns above.
	return "❌ Error from OpenAI: retries exhausted"
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests
}
