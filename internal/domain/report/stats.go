package report

import (
	"sort"
	"time"

	"github.com/medagenda/medagenda/internal/domain/consultation"
)

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis"`
	Count     int    `json:"count"`
}

// countByMonth buckets effective dates into YYYY-MM months, ascending.
func countByMonth(dates []time.Time) []MonthCount {
	counts := map[string]int{}
	for _, d := range dates {
		counts[DayUTC(d).Format("2006-01")]++
	}
	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// topDiagnoses frequency-counts non-empty diagnosis strings and keeps the
// most common ones, ties broken alphabetically for stable output.
func topDiagnoses(cons []*consultation.Consultation, limit int) []DiagnosisCount {
	counts := map[string]int{}
	for _, c := range cons {
		if c.Diagnosis == nil || *c.Diagnosis == "" {
			continue
		}
		counts[*c.Diagnosis]++
	}
	out := make([]DiagnosisCount, 0, len(counts))
	for diag, n := range counts {
		out = append(out, DiagnosisCount{Diagnosis: diag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Diagnosis < out[j].Diagnosis
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
