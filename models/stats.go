package models

// AthleteSummary is the per-athlete cheer ranking entry.
type AthleteSummary struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// MethodSummary is the per-payment-method breakdown entry.
type MethodSummary struct {
	Method string  `json:"method"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// MonthBucket is one calendar month of cheer activity, keyed YYYY-MM.
type MonthBucket struct {
	YearMonth string  `json:"year_month"`
	Count     int     `json:"count"`
	Total     float64 `json:"total"`
}

// StatsSummary holds the overall totals across every cheer on record.
type StatsSummary struct {
	TotalCheers int     `json:"total_cheers"`
	TotalAmount float64 `json:"total_amount"`
	AvgAmount   float64 `json:"avg_amount"`
	VenueCount  int     `json:"venue_count"`
}

// Dashboard is the full stats payload served to the dashboard page.
type Dashboard struct {
	Summary  StatsSummary     `json:"summary"`
	Athletes []AthleteSummary `json:"athletes"`
	Methods  []MethodSummary  `json:"methods"`
	Monthly  []MonthBucket    `json:"monthly"`
}
