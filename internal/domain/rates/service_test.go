package rates

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	rates []*HistoricalRate
}

func (m *mockRepo) Create(_ context.Context, rate *HistoricalRate) error {
	if rate.ID == uuid.Nil {
		rate.ID = uuid.New()
	}
	if rate.CapturedAt.IsZero() {
		rate.CapturedAt = time.Now().UTC()
	}
	m.rates = append(m.rates, rate)
	return nil
}

func (m *mockRepo) Latest(_ context.Context, currencyCode string, day time.Time) (*HistoricalRate, error) {
	var best *HistoricalRate
	for _, r := range m.rates {
		if r.CurrencyCode != currencyCode || !sameDay(r.RateDate, day) {
			continue
		}
		if best == nil || r.CapturedAt.After(best.CapturedAt) {
			best = r
		}
	}
	return best, nil
}

func (m *mockRepo) ListByCurrency(_ context.Context, currencyCode string, limit, offset int) ([]*HistoricalRate, int, error) {
	var out []*HistoricalRate
	for _, r := range m.rates {
		if r.CurrencyCode == currencyCode {
			out = append(out, r)
		}
	}
	total := len(out)
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func TestCaptureRate_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		rate HistoricalRate
		ok   bool
	}{
		{"valid", HistoricalRate{CurrencyCode: "ves", RateDate: day, Rate: 36.5}, true},
		{"missing currency", HistoricalRate{RateDate: day, Rate: 36.5}, false},
		{"zero rate", HistoricalRate{CurrencyCode: "VES", RateDate: day}, false},
		{"negative rate", HistoricalRate{CurrencyCode: "VES", RateDate: day, Rate: -1}, false},
		{"missing date", HistoricalRate{CurrencyCode: "VES", Rate: 36.5}, false},
	}
	for _, tc := range cases {
		rate := tc.rate
		err := svc.CaptureRate(context.Background(), &rate)
		if (err == nil) != tc.ok {
			t.Errorf("%s: err = %v, want ok=%v", tc.name, err, tc.ok)
		}
		if tc.ok && rate.CurrencyCode != "VES" {
			t.Errorf("%s: currency not normalized, got %q", tc.name, rate.CurrencyCode)
		}
	}
}

func TestRateFor_MostRecentCaptureWins(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	repo.rates = []*HistoricalRate{
		{ID: uuid.New(), CurrencyCode: "VES", RateDate: day, Rate: 36.0, CapturedAt: day.Add(8 * time.Hour)},
		{ID: uuid.New(), CurrencyCode: "VES", RateDate: day, Rate: 40.0, CapturedAt: day.Add(18 * time.Hour)},
		{ID: uuid.New(), CurrencyCode: "VES", RateDate: day.AddDate(0, 0, 1), Rate: 41.0, CapturedAt: day.Add(30 * time.Hour)},
	}

	got, err := svc.RateFor(context.Background(), "ves", day)
	if err != nil {
		t.Fatalf("RateFor: %v", err)
	}
	if got == nil || got.Rate != 40.0 {
		t.Fatalf("RateFor = %+v, want rate 40.0", got)
	}
}

func TestRateFor_MissingDayIsNil(t *testing.T) {
	svc := NewService(&mockRepo{})
	got, err := svc.RateFor(context.Background(), "VES", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RateFor: %v", err)
	}
	if got != nil {
		t.Fatalf("RateFor = %+v, want nil for uncaptured day", got)
	}
}
