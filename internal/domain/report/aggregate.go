package report

import (
	"regexp"
	"sort"

	"github.com/medagenda/medagenda/internal/domain/billing"
)

// referenceMarker matches the fixed-format payment reference embedded in
// free-text invoice notes, e.g. "pago movil [REFERENCIA] 0412-998877".
var referenceMarker = regexp.MustCompile(`\[REFERENCIA\]\s*(\S+)`)

// ExtractReference pulls the payment reference token out of notes. The
// second return is false when no marker is present.
func ExtractReference(notas string) (string, bool) {
	m := referenceMarker.FindStringSubmatch(notas)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type MethodTally struct {
	Metodo     string `json:"metodo"`
	Referencia string `json:"referencia"`
	Count      int    `json:"count"`
}

type BreakdownEntry struct {
	Date     string         `json:"date"`
	Currency string         `json:"currency"`
	USD      float64        `json:"usd"`
	BS       float64        `json:"bs"`
	Count    int            `json:"count"`
	Tasa     float64        `json:"tasa"`
	Metodos  []*MethodTally `json:"metodos"`
}

type IncomeSummary struct {
	TotalIncome    float64
	TotalIncomeUSD float64
	TotalIncomeBS  float64
	Breakdown      []*BreakdownEntry
}

// aggregateIncome sums the paid invoice set into USD and bolivar totals and
// builds the per-(day, currency) breakdown. The USD total is a face-value
// sum across currencies; upstream consumers have always read it that way,
// so the behavior is kept even though it mixes units.
func (s *Service) aggregateIncome(invoices []*billing.Invoice, table rateTable) IncomeSummary {
	sum := IncomeSummary{Breakdown: []*BreakdownEntry{}}
	entries := map[string]*BreakdownEntry{}

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		total, ok := inv.Amount()
		if !ok {
			s.log.Warn().Str("invoice_id", inv.ID.String()).Str("total", inv.Total).
				Msg("skipping invoice with non-numeric total")
			continue
		}
		effDate, ok := InvoiceEffectiveDate(inv)
		if !ok {
			continue
		}
		day := DayUTC(effDate).Format("2006-01-02")
		rate := effectiveRate(table, inv, day)
		bs := total * rate

		sum.TotalIncomeUSD += total
		sum.TotalIncomeBS += bs

		key := day + "_" + inv.Currency()
		entry, exists := entries[key]
		if !exists {
			entry = &BreakdownEntry{
				Date:     day,
				Currency: inv.Currency(),
				Tasa:     rate,
				Metodos:  []*MethodTally{},
			}
			entries[key] = entry
			sum.Breakdown = append(sum.Breakdown, entry)
		}
		entry.USD += total
		entry.BS += bs
		entry.Count++

		metodo := ""
		if inv.MetodoPago != nil {
			metodo = *inv.MetodoPago
		}
		referencia := ""
		if inv.Notas != nil {
			if ref, ok := ExtractReference(*inv.Notas); ok {
				referencia = ref
			}
		}
		tallied := false
		for _, mt := range entry.Metodos {
			if mt.Metodo == metodo && mt.Referencia == referencia {
				mt.Count++
				tallied = true
				break
			}
		}
		if !tallied {
			entry.Metodos = append(entry.Metodos, &MethodTally{Metodo: metodo, Referencia: referencia, Count: 1})
		}
	}

	sum.TotalIncome = sum.TotalIncomeUSD

	sort.Slice(sum.Breakdown, func(i, j int) bool {
		a, b := sum.Breakdown[i], sum.Breakdown[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		return a.Currency < b.Currency
	})
	return sum
}
