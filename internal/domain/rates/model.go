package rates

import (
	"time"

	"github.com/google/uuid"
)

// HistoricalRate is a captured exchange rate for a currency on a calendar
// day. Several captures may exist for the same (currency, day) pair; the most
// recent capture wins.
type HistoricalRate struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CurrencyCode string    `db:"currency_code" json:"currency_code"`
	RateDate     time.Time `db:"rate_date" json:"rate_date"`
	Rate         float64   `db:"rate" json:"rate"`
	CapturedAt   time.Time `db:"captured_at" json:"captured_at"`
}
