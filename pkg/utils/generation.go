package utils

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// GenerationClientInterface is the language model used to write itineraries.
// When grounded is set the model is asked to draw on current outside
// information (opening times, events, closures) as well as the prompt.
type GenerationClientInterface interface {
	Generate(ctx context.Context, prompt string, grounded bool) (string, error)
}

const groundingInstruction = "Ground your answer in current, real-world information about Darwin and the Northern Territory: " +
	"opening hours, seasonal closures, events and typical prices. Do not invent venues that are not in the provided lists " +
	"unless they are well-known public places."

type RateLimitedGenerationClient struct {
	next    GenerationClientInterface
	limiter *rate.Limiter
}

// NewRateLimitedGenerationClient allows requestsPerMinute calls with a burst
// of one. A non-positive rate disables limiting.
func NewRateLimitedGenerationClient(next GenerationClientInterface, requestsPerMinute int) GenerationClientInterface {
	if requestsPerMinute <= 0 {
		return next
	}
	every := rate.Every(time.Minute / time.Duration(requestsPerMinute))
	return &RateLimitedGenerationClient{
		next:    next,
		limiter: rate.NewLimiter(every, 1),
	}
}

func (r *RateLimitedGenerationClient) Generate(ctx context.Context, prompt string, grounded bool) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("generation rate limit: %w", err)
	}
	return r.next.Generate(ctx, prompt, grounded)
}
