package response

import (
	"math"

	"wheelworks/internal/domain/entities"
)

type LocationCountResponse struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type ServicePreferencesResponse struct {
	Mobile     int `json:"mobile"`
	Workshop   int `json:"workshop"`
	Collection int `json:"collection"`
}

type DistanceBucketResponse struct {
	Range   string  `json:"range"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type CoverageResponse struct {
	DistanceBuckets           []DistanceBucketResponse `json:"distance_buckets"`
	MobileCoverage            int                      `json:"mobile_coverage"`
	MobileCoveragePercent     float64                  `json:"mobile_coverage_percent"`
	CollectionCoverage        int                      `json:"collection_coverage"`
	CollectionCoveragePercent float64                  `json:"collection_coverage_percent"`
}

type AnalyticsResponse struct {
	TotalQuotes          int                        `json:"total_quotes"`
	QuotesThisMonth      int                        `json:"quotes_this_month"`
	ServiceTypeBreakdown map[string]int             `json:"service_type_breakdown"`
	LocationBreakdown    []LocationCountResponse    `json:"location_breakdown"`
	ServicePreferences   ServicePreferencesResponse `json:"service_preferences"`
	VehicleTypes         map[string]int             `json:"vehicle_types"`
	SpecificServices     map[string]int             `json:"specific_services"`
	WheelCounts          map[int]int                `json:"wheel_counts"`
	Coverage             CoverageResponse           `json:"coverage_analytics"`
}

// OverviewResponse is the dashboard payload: the derived snapshot plus the
// underlying quotes, newest first.
type OverviewResponse struct {
	Analytics AnalyticsResponse `json:"analytics"`
	Quotes    []QuoteResponse   `json:"quotes"`
}

// distanceBucketOrder fixes the render order of the histogram.
var distanceBucketOrder = []string{"0-10", "11-20", "21-30", "31-40", "40+"}

func FromSnapshot(s entities.AnalyticsSnapshot) AnalyticsResponse {
	res := AnalyticsResponse{
		TotalQuotes:          s.TotalQuotes,
		QuotesThisMonth:      s.QuotesThisMonth,
		ServiceTypeBreakdown: s.ServiceTypeBreakdown,
		ServicePreferences: ServicePreferencesResponse{
			Mobile:     s.ServicePreferences.Mobile,
			Workshop:   s.ServicePreferences.Workshop,
			Collection: s.ServicePreferences.Collection,
		},
		VehicleTypes:     s.VehicleTypes,
		SpecificServices: s.SpecificServices,
		WheelCounts:      s.WheelCounts,
		Coverage: CoverageResponse{
			MobileCoverage:            s.Coverage.MobileCoverage,
			MobileCoveragePercent:     Percent(s.Coverage.MobileCoverage, s.TotalQuotes),
			CollectionCoverage:        s.Coverage.CollectionCoverage,
			CollectionCoveragePercent: Percent(s.Coverage.CollectionCoverage, s.TotalQuotes),
		},
	}

	res.LocationBreakdown = make([]LocationCountResponse, 0, len(s.LocationBreakdown))
	for _, lc := range s.LocationBreakdown {
		res.LocationBreakdown = append(res.LocationBreakdown, LocationCountResponse{Location: lc.Location, Count: lc.Count})
	}

	res.Coverage.DistanceBuckets = make([]DistanceBucketResponse, 0, len(distanceBucketOrder))
	for _, rng := range distanceBucketOrder {
		count := s.Coverage.DistanceBuckets[rng]
		res.Coverage.DistanceBuckets = append(res.Coverage.DistanceBuckets, DistanceBucketResponse{
			Range:   rng,
			Count:   count,
			Percent: Percent(count, s.TotalQuotes),
		})
	}

	return res
}

func FromOverview(s entities.AnalyticsSnapshot, quotes []entities.Quote) OverviewResponse {
	res := OverviewResponse{
		Analytics: FromSnapshot(s),
		Quotes:    make([]QuoteResponse, 0, len(quotes)),
	}
	for _, q := range quotes {
		res.Quotes = append(res.Quotes, FromQuote(q))
	}
	return res
}

// Percent derives a render-time percentage, rounded to one decimal place.
// 0/0 is 0, never NaN.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
