package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest is what the payment step sees of a validated checkout.
type PaymentRequest struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	PaymentMethod string
}

// PaymentProcessor charges a validated checkout.
type PaymentProcessor interface {
	Process(ctx context.Context, req PaymentRequest) error
}

// SimulatedProcessor accepts every payment after Delay.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p SimulatedProcessor) Process(ctx context.Context, req PaymentRequest) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
