// Package statistics summarizes the review log per month.
package statistics

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/at-ishikawa/recall/internal/history"
	"github.com/at-ishikawa/recall/internal/scheduling"
)

// ReviewStatistics holds statistics for a time period
type ReviewStatistics struct {
	Period      string // "2025-01"
	NewCards    int    // Cards rated for the first time
	Reviews     int    // Ratings given to cards in the review queue
	Lapses      int    // Reviews rated Again
	Ratings     int    // All ratings, including learning steps
	UniqueCards int    // Distinct cards rated
}

// Retention is the share of reviews that were not lapses, or 0 without reviews.
func (s ReviewStatistics) Retention() float64 {
	return retention(s.Reviews, s.Lapses)
}

// AggregateStatistics holds totals across all periods
type AggregateStatistics struct {
	NewCards    int
	Reviews     int
	Lapses      int
	Ratings     int
	UniqueCards int // Distinct cards across all periods
}

func (s AggregateStatistics) Retention() float64 {
	return retention(s.Reviews, s.Lapses)
}

func retention(reviews, lapses int) float64 {
	if reviews == 0 {
		return 0
	}
	return float64(reviews-lapses) / float64(reviews)
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []ReviewStatistics
	Aggregate AggregateStatistics
}

type periodData struct {
	stats ReviewStatistics
	cards map[string]struct{}
}

// CalculateStatistics groups logs by the month they were reviewed in loc.
// year and month filter the periods; 0 means no filter.
func CalculateStatistics(logs []history.ReviewLog, loc *time.Location, year, month int) StatisticsResult {
	if loc == nil {
		loc = time.UTC
	}
	periods := make(map[string]*periodData)
	allCards := make(map[string]struct{})

	for _, log := range logs {
		reviewedAt := log.ReviewedAt.In(loc)
		if !matchesFilter(reviewedAt.Year(), int(reviewedAt.Month()), year, month) {
			continue
		}
		period := fmt.Sprintf("%d-%02d", reviewedAt.Year(), int(reviewedAt.Month()))
		data := ensurePeriodExists(periods, period)

		data.stats.Ratings++
		data.cards[log.CardID] = struct{}{}
		allCards[log.CardID] = struct{}{}
		switch scheduling.Queue(log.QueueBefore) {
		case scheduling.QueueNew:
			data.stats.NewCards++
		case scheduling.QueueReview:
			data.stats.Reviews++
			if scheduling.Rating(log.Rating) == scheduling.Again {
				data.stats.Lapses++
			}
		}
	}

	return buildResult(periods, len(allCards))
}

func ensurePeriodExists(periods map[string]*periodData, period string) *periodData {
	if periods[period] == nil {
		periods[period] = &periodData{
			stats: ReviewStatistics{Period: period},
			cards: make(map[string]struct{}),
		}
	}
	return periods[period]
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildResult(periods map[string]*periodData, uniqueCards int) StatisticsResult {
	result := StatisticsResult{
		Periods:   make([]ReviewStatistics, 0, len(periods)),
		Aggregate: AggregateStatistics{UniqueCards: uniqueCards},
	}
	for _, data := range periods {
		stats := data.stats
		stats.UniqueCards = len(data.cards)
		result.Periods = append(result.Periods, stats)

		result.Aggregate.NewCards += stats.NewCards
		result.Aggregate.Reviews += stats.Reviews
		result.Aggregate.Lapses += stats.Lapses
		result.Aggregate.Ratings += stats.Ratings
	}

	// Newest first
	slices.SortFunc(result.Periods, func(a, b ReviewStatistics) int {
		return cmp.Compare(b.Period, a.Period)
	})
	return result
}
