package provider

import (
	"context"
	"strings"
	"time"
)

// Client is the contract both model providers satisfy. Ask never returns an
// error: misconfiguration and call failures come back as displayable
// sentinel text so a single provider failure cannot sink a briefing batch.
type Client interface {
	Name() string
	Ready() error
	Ask(ctx context.Context, question string, personaPrompts []string) string
}

const (
	maxAttempts = 3
	baseDelay   = 2 * time.Second
)

const personaPreamble = "The person asking this question has the following profile. " +
	"Tailor the tone and content of your answer to this asker:"

// personaContext joins the active persona prompts into the fixed asker
// profile template. Empty input yields no context at all.
func personaContext(prompts []string) string {
	if len(prompts) == 0 {
		return ""
	}
	return personaPreamble + "\n\n" + strings.Join(prompts, "\n\n")
}

// retryDelay returns the backoff before the next attempt: 2s after the
// first failure, doubling each time.
func retryDelay(attempt int) time.Duration {
	return baseDelay << attempt
}
