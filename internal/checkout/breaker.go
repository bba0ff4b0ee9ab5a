package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// BreakerSettings controls when the payment step stops accepting calls.
type BreakerSettings struct {
	// ConsecutiveFailures opens the breaker once reached.
	ConsecutiveFailures uint32
	// Cooldown is how long the breaker stays open before a trial call.
	Cooldown time.Duration
}

// BreakerProcessor fails fast while the wrapped processor keeps failing.
type BreakerProcessor struct {
	next PaymentProcessor
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerProcessor wraps next. Caller cancellations do not count as failures.
func NewBreakerProcessor(next PaymentProcessor, settings BreakerSettings, logg *logger.Logger) *BreakerProcessor {
	threshold := settings.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "payment",
		MaxRequests: 1,
		Timeout:     settings.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logg == nil {
				return
			}
			ctx := logg.WithFields(context.Background(), map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			logg.Warn(ctx, "payment breaker state changed")
		},
	})
	return &BreakerProcessor{next: next, cb: cb}
}

func (p *BreakerProcessor) Process(ctx context.Context, req PaymentRequest) error {
	_, err := p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.next.Process(ctx, req)
	})
	return err
}
