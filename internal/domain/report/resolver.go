package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/medagenda/medagenda/internal/domain/billing"
	"github.com/medagenda/medagenda/internal/domain/rates"
)

// RateSource looks up the most recent historical rate captured for a
// currency on a calendar day. A nil result with nil error means no capture
// exists for that day.
type RateSource interface {
	RateFor(ctx context.Context, currencyCode string, day time.Time) (*rates.HistoricalRate, error)
}

// localCurrencies are already stated in bolivares. No lookup is made for
// them and the conversion rate is 1.
var localCurrencies = map[string]bool{"BS": true, "VES": true}

type rateKey struct {
	day      string // YYYY-MM-DD
	currency string
}

type rateTable map[rateKey]float64

// resolveRates collects the distinct (day, currency) pairs across the paid
// invoice set and issues one memoized lookup per pair, fanned out
// concurrently. A failed lookup is logged and resolves to "no rate found";
// it never aborts the batch.
func (s *Service) resolveRates(ctx context.Context, invoices []*billing.Invoice) rateTable {
	var keys []rateKey
	seen := map[rateKey]bool{}
	for _, inv := range invoices {
		cur := inv.Currency()
		if localCurrencies[cur] {
			continue
		}
		d, ok := InvoiceEffectiveDate(inv)
		if !ok {
			continue
		}
		k := rateKey{day: DayUTC(d).Format("2006-01-02"), currency: cur}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	// Each goroutine writes its own slot; the map is assembled after the
	// join so no locking is needed.
	results := make([]*rates.HistoricalRate, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxLookups)
	for i, k := range keys {
		i, k := i, k
		g.Go(func() error {
			day, err := ParseDay(k.day)
			if err != nil {
				return nil
			}
			hr, err := s.rates.RateFor(gctx, k.currency, day)
			if err != nil {
				s.log.Warn().Err(err).
					Str("currency", k.currency).
					Str("day", k.day).
					Msg("historical rate lookup failed, falling back")
				return nil
			}
			results[i] = hr
			return nil
		})
	}
	_ = g.Wait()

	table := make(rateTable, len(keys))
	for i, k := range keys {
		if results[i] != nil {
			table[k] = results[i].Rate
		}
	}
	return table
}

// effectiveRate applies the fallback chain: historical rate for the
// invoice's (day, currency), then the rate frozen on the invoice, then 1.
// Local-currency invoices always convert at 1.
func effectiveRate(table rateTable, inv *billing.Invoice, day string) float64 {
	cur := inv.Currency()
	if localCurrencies[cur] {
		return 1
	}
	if rate, ok := table[rateKey{day: day, currency: cur}]; ok {
		return rate
	}
	if inv.TipoCambio != nil {
		return *inv.TipoCambio
	}
	return 1
}
