package rates

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	rates Repository
}

func NewService(rates Repository) *Service {
	return &Service{rates: rates}
}

func (s *Service) CaptureRate(ctx context.Context, rate *HistoricalRate) error {
	rate.CurrencyCode = strings.ToUpper(strings.TrimSpace(rate.CurrencyCode))
	if rate.CurrencyCode == "" {
		return fmt.Errorf("currency_code is required")
	}
	if rate.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %v", rate.Rate)
	}
	if rate.RateDate.IsZero() {
		return fmt.Errorf("rate_date is required")
	}
	return s.rates.Create(ctx, rate)
}

// RateFor returns the most recent capture for the currency on the given day,
// or nil when none exists.
func (s *Service) RateFor(ctx context.Context, currencyCode string, day time.Time) (*HistoricalRate, error) {
	return s.rates.Latest(ctx, strings.ToUpper(currencyCode), day)
}

func (s *Service) ListRates(ctx context.Context, currencyCode string, limit, offset int) ([]*HistoricalRate, int, error) {
	return s.rates.ListByCurrency(ctx, strings.ToUpper(currencyCode), limit, offset)
}
