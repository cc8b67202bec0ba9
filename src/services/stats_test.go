package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmalloy/seatscan/src/models"
)

func statsBlock(listings, average, lowest, highest float64) map[string]interface{} {
	return map[string]interface{}{
		"listing_count": listings,
		"average_price": average,
		"lowest_price":  lowest,
		"highest_price": highest,
	}
}

func TestSummarizeEventStats(t *testing.T) {
	t.Run("aggregates across priced events", func(t *testing.T) {
		events := models.NewTableFromRecords([]map[string]interface{}{
			{"id": float64(1), "stats": statsBlock(10, 100, 40, 900)},
			{"id": float64(2), "stats": statsBlock(20, 200, 60, 400)},
			{"id": float64(3), "stats": statsBlock(30, 600, 25, 700)},
		})

		summary, err := SummarizeEventStats(events)
		assert.Nil(t, err)
		assert.Equal(t, 3, summary.EventCount)
		assert.Equal(t, 3, summary.PricedEventCount)
		assert.Equal(t, float64(60), summary.TotalListings)
		assert.Equal(t, float64(300), summary.MeanAveragePrice)
		assert.Equal(t, float64(200), summary.MedianAveragePrice)
		assert.Equal(t, float64(25), summary.LowestPrice)
		assert.Equal(t, float64(900), summary.HighestPrice)
	})

	t.Run("events without a stats block are skipped", func(t *testing.T) {
		events := models.NewTableFromRecords([]map[string]interface{}{
			{"id": float64(1), "stats": statsBlock(10, 100, 40, 900)},
			{"id": float64(2), "stats": nil},
		})

		summary, err := SummarizeEventStats(events)
		assert.Nil(t, err)
		assert.Equal(t, 2, summary.EventCount)
		assert.Equal(t, 1, summary.PricedEventCount)
		assert.Equal(t, float64(100), summary.MeanAveragePrice)
	})

	t.Run("null prices inside a stats block are skipped", func(t *testing.T) {
		events := models.NewTableFromRecords([]map[string]interface{}{
			{"id": float64(1), "stats": map[string]interface{}{
				"listing_count": float64(0),
				"average_price": nil,
				"lowest_price":  nil,
				"highest_price": nil,
			}},
			{"id": float64(2), "stats": statsBlock(5, 80, 50, 120)},
		})

		summary, err := SummarizeEventStats(events)
		assert.Nil(t, err)
		assert.Equal(t, 1, summary.PricedEventCount)
		assert.Equal(t, float64(80), summary.MedianAveragePrice)
	})

	t.Run("no priced events is an error", func(t *testing.T) {
		events := models.NewTableFromRecords([]map[string]interface{}{
			{"id": float64(1), "stats": nil},
		})

		_, err := SummarizeEventStats(events)
		assert.NotNil(t, err)
	})

	t.Run("a table without a stats column is an error", func(t *testing.T) {
		events := models.NewTableFromRecords([]map[string]interface{}{
			{"id": float64(1)},
		})

		_, err := SummarizeEventStats(events)
		assert.NotNil(t, err)
	})
}
