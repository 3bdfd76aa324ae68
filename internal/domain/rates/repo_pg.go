package rates

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const rateCols = `id, currency_code, rate_date, rate, captured_at`

func scanRate(row pgx.Row) (*HistoricalRate, error) {
	var hr HistoricalRate
	err := row.Scan(&hr.ID, &hr.CurrencyCode, &hr.RateDate, &hr.Rate, &hr.CapturedAt)
	return &hr, err
}

func (r *repoPG) Create(ctx context.Context, rate *HistoricalRate) error {
	rate.ID = uuid.New()
	if rate.CapturedAt.IsZero() {
		rate.CapturedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO historical_rate (id, currency_code, rate_date, rate, captured_at)
		VALUES ($1,$2,$3,$4,$5)`,
		rate.ID, rate.CurrencyCode, rate.RateDate, rate.Rate, rate.CapturedAt)
	return err
}

func (r *repoPG) Latest(ctx context.Context, currencyCode string, day time.Time) (*HistoricalRate, error) {
	hr, err := scanRate(r.pool.QueryRow(ctx, `
		SELECT `+rateCols+` FROM historical_rate
		WHERE currency_code = $1 AND rate_date = $2::date
		ORDER BY captured_at DESC
		LIMIT 1`,
		currencyCode, day))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return hr, nil
}

func (r *repoPG) ListByCurrency(ctx context.Context, currencyCode string, limit, offset int) ([]*HistoricalRate, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM historical_rate WHERE currency_code = $1`, currencyCode).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+rateCols+` FROM historical_rate WHERE currency_code = $1 ORDER BY rate_date DESC, captured_at DESC LIMIT $2 OFFSET $3`, currencyCode, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HistoricalRate
	for rows.Next() {
		hr, err := scanRate(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, hr)
	}
	return items, total, rows.Err()
}
