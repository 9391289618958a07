package stats_test

import (
	"math"
	"testing"
	"time"

	models "github.com/Jigen0509/cheerain/models"
	stats "github.com/Jigen0509/cheerain/stats"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ------------------------------------------------------------
// WORKED SCENARIO
// ------------------------------------------------------------

func TestBuildDashboard_Scenario(t *testing.T) {
	cheers := []models.Cheer{
		{AthleteName: "A", Amount: 100, PaymentMethod: "credit", IsVenue: true, CreatedAt: date(2024, time.January)},
		{AthleteName: "A", Amount: 200, PaymentMethod: "credit", IsVenue: false, CreatedAt: date(2024, time.January)},
		{AthleteName: "B", Amount: 50, PaymentMethod: "paypay", IsVenue: true, CreatedAt: date(2024, time.February)},
	}

	d := stats.BuildDashboard(cheers)

	if len(d.Athletes) != 2 {
		t.Fatalf("expected 2 athlete summaries, got %d", len(d.Athletes))
	}
	if d.Athletes[0].Name != "A" || d.Athletes[0].Count != 2 || !almostEqual(d.Athletes[0].Total, 300) {
		t.Fatalf("unexpected first athlete summary: %+v", d.Athletes[0])
	}
	if d.Athletes[1].Name != "B" || d.Athletes[1].Count != 1 || !almostEqual(d.Athletes[1].Total, 50) {
		t.Fatalf("unexpected second athlete summary: %+v", d.Athletes[1])
	}

	if len(d.Methods) != 2 {
		t.Fatalf("expected 2 method summaries, got %d", len(d.Methods))
	}
	if d.Methods[0].Method != "credit" || d.Methods[0].Count != 2 || !almostEqual(d.Methods[0].Total, 300) {
		t.Fatalf("unexpected first method summary: %+v", d.Methods[0])
	}
	if d.Methods[1].Method != "paypay" || d.Methods[1].Count != 1 || !almostEqual(d.Methods[1].Total, 50) {
		t.Fatalf("unexpected second method summary: %+v", d.Methods[1])
	}

	if len(d.Monthly) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(d.Monthly))
	}
	if d.Monthly[0].YearMonth != "2024-01" || d.Monthly[0].Count != 2 || !almostEqual(d.Monthly[0].Total, 300) {
		t.Fatalf("unexpected first month bucket: %+v", d.Monthly[0])
	}
	if d.Monthly[1].YearMonth != "2024-02" || d.Monthly[1].Count != 1 || !almostEqual(d.Monthly[1].Total, 50) {
		t.Fatalf("unexpected second month bucket: %+v", d.Monthly[1])
	}

	if d.Summary.TotalCheers != 3 || !almostEqual(d.Summary.TotalAmount, 350) {
		t.Fatalf("unexpected summary totals: %+v", d.Summary)
	}
	if !almostEqual(d.Summary.AvgAmount, 350.0/3.0) {
		t.Fatalf("expected avg %v, got %v", 350.0/3.0, d.Summary.AvgAmount)
	}
	if d.Summary.VenueCount != 2 {
		t.Fatalf("expected venue count 2, got %d", d.Summary.VenueCount)
	}
}

// ------------------------------------------------------------
// CONSERVATION: no drops, no double counting
// ------------------------------------------------------------

func TestAggregates_Conservation(t *testing.T) {
	cheers := []models.Cheer{
		{AthleteName: "A", Amount: 10, PaymentMethod: "paypay", CreatedAt: date(2024, time.March)},
		{AthleteName: "B", Amount: 20, PaymentMethod: "credit"},
		{AthleteName: "B", PaymentMethod: "cash", CreatedAt: date(2024, time.April)},
		{AthleteName: "C", Amount: 5.5},
		{AthleteName: "A", Amount: 0.5, PaymentMethod: "banktransfer", CreatedAt: date(2024, time.March)},
	}

	athletes := stats.AthleteSummaries(cheers)
	methods := stats.MethodSummaries(cheers)
	summary := stats.Summarize(cheers)

	countByAthlete, totalByAthlete := 0, 0.0
	for _, s := range athletes {
		countByAthlete += s.Count
		totalByAthlete += s.Total
	}
	countByMethod, totalByMethod := 0, 0.0
	for _, s := range methods {
		countByMethod += s.Count
		totalByMethod += s.Total
	}

	if countByAthlete != len(cheers) {
		t.Fatalf("athlete counts sum to %d, want %d", countByAthlete, len(cheers))
	}
	if countByMethod != len(cheers) {
		t.Fatalf("method counts sum to %d, want %d", countByMethod, len(cheers))
	}
	if !almostEqual(totalByAthlete, summary.TotalAmount) {
		t.Fatalf("athlete totals sum to %v, want %v", totalByAthlete, summary.TotalAmount)
	}
	if !almostEqual(totalByMethod, summary.TotalAmount) {
		t.Fatalf("method totals sum to %v, want %v", totalByMethod, summary.TotalAmount)
	}
}

// ------------------------------------------------------------
// SORT ORDER AND TIE-BREAK
// ------------------------------------------------------------

func TestAthleteSummaries_SortedByCountThenName(t *testing.T) {
	cheers := []models.Cheer{
		{AthleteName: "Zara", Amount: 1},
		{AthleteName: "Ken", Amount: 1},
		{AthleteName: "Ken", Amount: 1},
		{AthleteName: "Aoi", Amount: 1},
	}

	out := stats.AthleteSummaries(cheers)

	if len(out) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Count > out[i-1].Count {
			t.Fatalf("ranking not sorted by count: %+v", out)
		}
	}
	if out[0].Name != "Ken" {
		t.Fatalf("expected Ken first, got %s", out[0].Name)
	}
	// Aoi and Zara both have one cheer; ties resolve by name.
	if out[1].Name != "Aoi" || out[2].Name != "Zara" {
		t.Fatalf("unexpected tie order: %+v", out)
	}
}

// ------------------------------------------------------------
// MISSING OPTIONAL FIELDS
// ------------------------------------------------------------

func TestAggregates_MissingFields(t *testing.T) {
	cheers := []models.Cheer{
		{AthleteName: "A"}, // no amount, no method, no timestamp
		{AthleteName: "A", Amount: 30, PaymentMethod: "paypay", CreatedAt: date(2024, time.May)},
	}

	athletes := stats.AthleteSummaries(cheers)
	if athletes[0].Count != 2 || !almostEqual(athletes[0].Total, 30) {
		t.Fatalf("missing amount should add 0 to total and 1 to count: %+v", athletes[0])
	}

	methods := stats.MethodSummaries(cheers)
	foundUnknown := false
	for _, m := range methods {
		if m.Method == stats.MethodUnknown {
			foundUnknown = true
			if m.Count != 1 {
				t.Fatalf("expected 1 cheer under unknown, got %d", m.Count)
			}
		}
	}
	if !foundUnknown {
		t.Fatalf("cheer without payment method not grouped under unknown: %+v", methods)
	}

	monthly := stats.MonthlyBuckets(cheers)
	if len(monthly) != 1 {
		t.Fatalf("cheer without timestamp should be excluded from monthly, got %+v", monthly)
	}

	summary := stats.Summarize(cheers)
	if summary.TotalCheers != 2 {
		t.Fatalf("cheer without timestamp must still count globally, got %d", summary.TotalCheers)
	}
}

// ------------------------------------------------------------
// MONTHLY WINDOW
// ------------------------------------------------------------

func TestMonthlyBuckets_TruncatedToLast12(t *testing.T) {
	var cheers []models.Cheer
	// 15 distinct months spanning a year boundary: 2023-04 .. 2024-06.
	start := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		cheers = append(cheers, models.Cheer{
			AthleteName: "A",
			Amount:      float64(i + 1),
			CreatedAt:   start.AddDate(0, i, 0),
		})
	}

	out := stats.MonthlyBuckets(cheers)

	if len(out) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(out))
	}
	if out[0].YearMonth != "2023-07" {
		t.Fatalf("expected oldest kept bucket 2023-07, got %s", out[0].YearMonth)
	}
	if out[len(out)-1].YearMonth != "2024-06" {
		t.Fatalf("expected newest bucket 2024-06, got %s", out[len(out)-1].YearMonth)
	}
	for i := 1; i < len(out); i++ {
		if out[i].YearMonth <= out[i-1].YearMonth {
			t.Fatalf("buckets not in chronological order: %+v", out)
		}
	}
}

func TestMonthlyBuckets_FewerThan12(t *testing.T) {
	cheers := []models.Cheer{
		{AthleteName: "A", Amount: 1, CreatedAt: date(2024, time.December)},
		{AthleteName: "A", Amount: 2, CreatedAt: date(2025, time.January)},
	}

	out := stats.MonthlyBuckets(cheers)

	if len(out) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(out))
	}
	if out[0].YearMonth != "2024-12" || out[1].YearMonth != "2025-01" {
		t.Fatalf("year boundary not ordered chronologically: %+v", out)
	}
}

// ------------------------------------------------------------
// EMPTY INPUT
// ------------------------------------------------------------

func TestBuildDashboard_Empty(t *testing.T) {
	d := stats.BuildDashboard(nil)

	if len(d.Athletes) != 0 || len(d.Methods) != 0 || len(d.Monthly) != 0 {
		t.Fatalf("expected empty views, got %+v", d)
	}
	if d.Summary.TotalCheers != 0 || d.Summary.TotalAmount != 0 || d.Summary.AvgAmount != 0 || d.Summary.VenueCount != 0 {
		t.Fatalf("expected zeroed summary, got %+v", d.Summary)
	}
}
