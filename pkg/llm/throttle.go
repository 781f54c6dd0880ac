package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttled enforces a minimum spacing between the starts of outbound model
// calls, process-wide. One instance is constructed in main and shared by every
// code path that talks to the model; the provider's rate limits are generous
// enough that human upload frequency never needs a distributed limiter.
//
// The token bucket (rate 1/interval, burst 1) reserves the next slot
// atomically, so concurrent requests serialize their call starts without
// serializing call execution.
type Throttled struct {
	model   ChatModel
	limiter *rate.Limiter
}

// NewThrottled wraps model so consecutive Ask starts are at least minInterval apart.
func NewThrottled(model ChatModel, minInterval time.Duration) *Throttled {
	if minInterval <= 0 {
		minInterval = time.Second
	}
	return &Throttled{
		model:   model,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

func (t *Throttled) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return t.model.Ask(ctx, systemPrompt, userPrompt)
}
