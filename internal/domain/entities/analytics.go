package entities

// LocationCount is one entry of the collapsed-location leaderboard.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// ServicePreferences tallies the three known service categories. Quotes with
// an unknown service value contribute to TotalQuotes but to none of these.
type ServicePreferences struct {
	Mobile     int `json:"mobile"`
	Workshop   int `json:"workshop"`
	Collection int `json:"collection"`
}

// CoverageAnalytics buckets quotes by straight-line distance from the
// workshop. Quotes without a distance are excluded from every bucket.
// MobileCoverage and CollectionCoverage are independent counters and may both
// count the same quote.
type CoverageAnalytics struct {
	DistanceBuckets    map[string]int `json:"distance_buckets"`
	MobileCoverage     int            `json:"mobile_coverage"`
	CollectionCoverage int            `json:"collection_coverage"`
}

// AnalyticsSnapshot is the derived dashboard aggregate. It is a pure function
// of the quote collection at read time, carries no identity and is never
// persisted; every dashboard load recomputes it from scratch.
type AnalyticsSnapshot struct {
	TotalQuotes          int                `json:"total_quotes"`
	QuotesThisMonth      int                `json:"quotes_this_month"`
	ServiceTypeBreakdown map[string]int     `json:"service_type_breakdown"`
	LocationBreakdown    []LocationCount    `json:"location_breakdown"`
	ServicePreferences   ServicePreferences `json:"service_preferences"`
	VehicleTypes         map[string]int     `json:"vehicle_types"`
	SpecificServices     map[string]int     `json:"specific_services"`
	WheelCounts          map[int]int        `json:"wheel_counts"`
	Coverage             CoverageAnalytics  `json:"coverage_analytics"`
}
