package services

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/kmalloy/seatscan/src/models"
)

// StatsSummary condenses the nested per-event stats blocks of a projected
// events table into one set of market-level numbers.
type StatsSummary struct {
	EventCount         int
	PricedEventCount   int
	TotalListings      float64
	MeanAveragePrice   float64
	MedianAveragePrice float64
	LowestPrice        float64
	HighestPrice       float64
}

// SummarizeEventStats aggregates listing counts and prices across an events
// table. Events without a stats block, or with unpriced listings, are
// skipped. At least one priced event is required.
func SummarizeEventStats(events *models.Table) (*StatsSummary, error) {
	values, err := events.Column("stats")
	if err != nil {
		return nil, fmt.Errorf("SummarizeEventStats: %w", err)
	}

	var listings, averages, lows, highs []float64
	for _, value := range values {
		record, ok := value.(map[string]interface{})
		if !ok {
			continue
		}

		if v, ok := asFloat(record["listing_count"]); ok {
			listings = append(listings, v)
		}
		if v, ok := asFloat(record["average_price"]); ok {
			averages = append(averages, v)
		}
		if v, ok := asFloat(record["lowest_price"]); ok {
			lows = append(lows, v)
		}
		if v, ok := asFloat(record["highest_price"]); ok {
			highs = append(highs, v)
		}
	}

	if len(averages) == 0 {
		return nil, fmt.Errorf("SummarizeEventStats: no priced events found")
	}

	summary := &StatsSummary{
		EventCount:       events.Len(),
		PricedEventCount: len(averages),
	}

	if summary.MeanAveragePrice, err = stats.Mean(averages); err != nil {
		return nil, fmt.Errorf("SummarizeEventStats: failed to average prices: %w", err)
	}

	if summary.MedianAveragePrice, err = stats.Median(averages); err != nil {
		return nil, fmt.Errorf("SummarizeEventStats: failed to take median price: %w", err)
	}

	// listing counts and price extremes can be null on the wire even for
	// priced events, so their absence is not an error
	if len(listings) > 0 {
		if summary.TotalListings, err = stats.Sum(listings); err != nil {
			return nil, fmt.Errorf("SummarizeEventStats: failed to sum listing counts: %w", err)
		}
	}

	if len(lows) > 0 {
		if summary.LowestPrice, err = stats.Min(lows); err != nil {
			return nil, fmt.Errorf("SummarizeEventStats: failed to take lowest price: %w", err)
		}
	}

	if len(highs) > 0 {
		if summary.HighestPrice, err = stats.Max(highs); err != nil {
			return nil, fmt.Errorf("SummarizeEventStats: failed to take highest price: %w", err)
		}
	}

	return summary, nil
}
