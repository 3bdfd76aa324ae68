package rates

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rate *HistoricalRate) error
	// Latest returns the most recently captured rate for the currency on the
	// given calendar day, or nil when no capture exists. A missing rate is
	// not an error; callers fall back to other sources.
	Latest(ctx context.Context, currencyCode string, day time.Time) (*HistoricalRate, error)
	ListByCurrency(ctx context.Context, currencyCode string, limit, offset int) ([]*HistoricalRate, int, error)
}
