package domain

// DerivedStats summarizes the lead collection for the dashboard header
// cards. It is recomputed from the collection on demand, never stored.
type DerivedStats struct {
	Total           int     `json:"total"`
	New             int     `json:"new"`
	Contacted       int     `json:"contacted"`
	Booked          int     `json:"booked"`
	ConversionRate  float64 `json:"conversionRate"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

// TreatmentCount is one slice of the treatment distribution chart.
type TreatmentCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatusCount is one slice of the status distribution chart, tagged
// with its fixed display color.
type StatusCount struct {
	Name  LeadStatus `json:"name"`
	Value int        `json:"value"`
	Color string     `json:"color"`
}

// TrendPoint is one calendar day in the lead/booking trend line.
type TrendPoint struct {
	Date   string `json:"date"`
	Leads  int    `json:"leads"`
	Booked int    `json:"booked"`
}

// ChartData bundles the three chart-ready series consumed by the
// dashboard.
type ChartData struct {
	Treatments []TreatmentCount `json:"treatments"`
	Statuses   []StatusCount    `json:"statuses"`
	DailyTrend []TrendPoint     `json:"dailyTrend"`
}
