// Package stats computes the dashboard aggregates over a full cheer
// collection. Every function is a pure pass over the input slice: group
// into a map of accumulators, then sort, so output order never depends
// on map iteration.
package stats

import (
	"sort"

	models "github.com/Jigen0509/cheerain/models"
)

// monthlyWindow is how many trailing months the dashboard chart shows.
const monthlyWindow = 12

// AthleteSummaries groups cheers by athlete name and ranks the result by
// cheer count, highest first. Equal counts fall back to name order so the
// ranking is stable across fetches.
func AthleteSummaries(cheers []models.Cheer) []models.AthleteSummary {
	acc := make(map[string]*models.AthleteSummary)
	for _, ch := range cheers {
		s, ok := acc[ch.AthleteName]
		if !ok {
			s = &models.AthleteSummary{Name: ch.AthleteName}
			acc[ch.AthleteName] = s
		}
		s.Count++
		s.Total += ch.Amount
	}

	out := make([]models.AthleteSummary, 0, len(acc))
	for _, s := range acc {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MethodSummaries groups cheers by payment method, highest count first.
// Cheers with no payment method recorded land in the "unknown" bucket.
func MethodSummaries(cheers []models.Cheer) []models.MethodSummary {
	acc := make(map[string]*models.MethodSummary)
	for _, ch := range cheers {
		method := ch.PaymentMethod
		if method == "" {
			method = MethodUnknown
		}
		s, ok := acc[method]
		if !ok {
			s = &models.MethodSummary{Method: method, Label: MethodLabel(method)}
			acc[method] = s
		}
		s.Count++
		s.Total += ch.Amount
	}

	out := make([]models.MethodSummary, 0, len(acc))
	for _, s := range acc {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// MonthlyBuckets groups cheers by calendar month of created_at, oldest
// first, truncated to the most recent 12 months. Cheers without a
// timestamp are left out of the chart; they still count everywhere else.
func MonthlyBuckets(cheers []models.Cheer) []models.MonthBucket {
	acc := make(map[string]*models.MonthBucket)
	for _, ch := range cheers {
		if ch.CreatedAt.IsZero() {
			continue
		}
		key := ch.CreatedAt.Format("2006-01")
		b, ok := acc[key]
		if !ok {
			b = &models.MonthBucket{YearMonth: key}
			acc[key] = b
		}
		b.Count++
		b.Total += ch.Amount
	}

	out := make([]models.MonthBucket, 0, len(acc))
	for _, b := range acc {
		out = append(out, *b)
	}
	// YYYY-MM keys sort chronologically as strings.
	sort.Slice(out, func(i, j int) bool {
		return out[i].YearMonth < out[j].YearMonth
	})
	if len(out) > monthlyWindow {
		out = out[len(out)-monthlyWindow:]
	}
	return out
}

// Summarize computes the overall totals. An empty collection yields a
// zeroed summary, not an error.
func Summarize(cheers []models.Cheer) models.StatsSummary {
	s := models.StatsSummary{TotalCheers: len(cheers)}
	for _, ch := range cheers {
		s.TotalAmount += ch.Amount
		if ch.IsVenue {
			s.VenueCount++
		}
	}
	if s.TotalCheers > 0 {
		s.AvgAmount = s.TotalAmount / float64(s.TotalCheers)
	}
	return s
}

// BuildDashboard assembles the full stats payload from one fetch.
func BuildDashboard(cheers []models.Cheer) models.Dashboard {
	return models.Dashboard{
		Summary:  Summarize(cheers),
		Athletes: AthleteSummaries(cheers),
		Methods:  MethodSummaries(cheers),
		Monthly:  MonthlyBuckets(cheers),
	}
}
