package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase/interfaces"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// Dashboard range selectors.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

const locationBreakdownLimit = 10

// specificServiceTags are the concrete work items a customer can tick in the
// wizard; modifier tags such as "mobile" are excluded so this counter tells
// apart work mix from delivery mode.
var specificServiceTags = map[string]bool{
	"diamond-cut":      true,
	"painted":          true,
	"tyre-replacement": true,
	"tyre-repair":      true,
	"tpms":             true,
}

// IDashboardUseCase serves the protected analytics dashboard.

type IDashboardUseCase interface {
	Overview(ctx context.Context, dateRange string) (entities.AnalyticsSnapshot, []entities.Quote, error)
}

type DashboardUseCase struct {
	repo interfaces.IQuoteRepository

	// now is swapped in tests to pin the calendar month.
	now func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// Overview loads the (optionally date-bounded) quote collection and derives a
// fresh snapshot. Nothing is cached: a reload recomputes everything,
// including the quotes-this-month cutoff.
func (u *DashboardUseCase) Overview(ctx context.Context, dateRange string) (entities.AnalyticsSnapshot, []entities.Quote, error) {
	now := u.now().UTC()

	var (
		quotes []entities.Quote
		err    error
	)
	switch strings.TrimSpace(dateRange) {
	case "":
		quotes, err = u.repo.ListAll(ctx)
	case RangeWeek:
		quotes, err = u.repo.ListCreatedSince(ctx, now.AddDate(0, 0, -7))
	case RangeMonth:
		quotes, err = u.repo.ListCreatedSince(ctx, now.AddDate(0, -1, 0))
	case RangeYear:
		quotes, err = u.repo.ListCreatedSince(ctx, now.AddDate(-1, 0, 0))
	default:
		return entities.AnalyticsSnapshot{}, nil, ErrInvalidDateRange
	}
	if err != nil {
		log.Printf("[dashboard][usecase] quote listing failed range=%q err=%v", dateRange, err)
		return entities.AnalyticsSnapshot{}, nil, err
	}

	snapshot := BuildSnapshot(quotes, now)

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})

	log.Printf("[dashboard][usecase] overview built range=%q quotes=%d", dateRange, snapshot.TotalQuotes)
	return snapshot, quotes, nil
}

// BuildSnapshot aggregates the quote collection in a single pass. The result
// is order-independent except for locationBreakdown tie-breaks, which follow
// first occurrence in input order so the output stays deterministic for a
// deterministic input.
func BuildSnapshot(quotes []entities.Quote, now time.Time) entities.AnalyticsSnapshot {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	s := entities.AnalyticsSnapshot{
		TotalQuotes:          len(quotes),
		ServiceTypeBreakdown: map[string]int{},
		VehicleTypes:         map[string]int{},
		SpecificServices:     map[string]int{},
		WheelCounts:          map[int]int{},
		Coverage: entities.CoverageAnalytics{
			DistanceBuckets: map[string]int{
				"0-10":  0,
				"11-20": 0,
				"21-30": 0,
				"31-40": 0,
				"40+":   0,
			},
		},
	}

	locationCounts := map[string]int{}
	locationFirstSeen := map[string]int{}

	for i, q := range quotes {
		if !q.CreatedAt.Before(monthStart) {
			s.QuotesThisMonth++
		}

		// A quote contributes once per tag, not once per quote.
		for _, tag := range q.ServiceTypes {
			s.ServiceTypeBreakdown[tag]++
			if specificServiceTags[tag] {
				s.SpecificServices[tag]++
			}
		}

		if key := collapseLocation(q.Location); key != "" {
			if _, seen := locationCounts[key]; !seen {
				locationFirstSeen[key] = i
			}
			locationCounts[key]++
		}

		switch q.Service {
		case entities.ServiceMobile:
			s.ServicePreferences.Mobile++
		case entities.ServiceWorkshop:
			s.ServicePreferences.Workshop++
		case entities.ServiceCollection:
			s.ServicePreferences.Collection++
			// Unknown categories are dropped on purpose; they still count
			// toward TotalQuotes.
		}

		if q.TyreDetails != nil && q.TyreDetails.VehicleType != "" {
			s.VehicleTypes[q.TyreDetails.VehicleType]++
		}
		if q.WheelCount != nil {
			s.WheelCounts[*q.WheelCount]++
		}

		if q.Distance != nil {
			s.Coverage.DistanceBuckets[distanceBucket(*q.Distance)]++
		}
		if q.HasServiceType(entities.ServiceMobile) {
			s.Coverage.MobileCoverage++
		}
		if q.Service == entities.ServiceCollection {
			s.Coverage.CollectionCoverage++
		}
	}

	s.LocationBreakdown = topLocations(locationCounts, locationFirstSeen, locationBreakdownLimit)
	return s
}

// collapseLocation folds free-text variations like "Exeter, Devon" and
// "Exeter, EX1" into a single key "Exeter".
func collapseLocation(location string) string {
	if i := strings.Index(location, ","); i >= 0 {
		location = location[:i]
	}
	return strings.TrimSpace(location)
}

func distanceBucket(miles float64) string {
	switch {
	case miles <= 10:
		return "0-10"
	case miles <= 20:
		return "11-20"
	case miles <= 30:
		return "21-30"
	case miles <= 40:
		return "31-40"
	default:
		return "40+"
	}
}

func topLocations(counts map[string]int, firstSeen map[string]int, limit int) []entities.LocationCount {
	out := make([]entities.LocationCount, 0, len(counts))
	for loc, n := range counts {
		out = append(out, entities.LocationCount{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Location] < firstSeen[out[j].Location]
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
