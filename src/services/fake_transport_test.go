package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kmalloy/seatscan/src/models"
)

type recordedRequest struct {
	kind   models.ResourceKind
	filter models.Filter
	id     string
}

// fakeTransport records every request and delegates the response to handler.
type fakeTransport struct {
	requests []recordedRequest
	handler  func(kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error)
}

func (f *fakeTransport) SendRequest(ctx context.Context, kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error) {
	f.requests = append(f.requests, recordedRequest{
		kind:   kind,
		filter: filter.Clone(),
		id:     id,
	})

	return f.handler(kind, filter, id)
}

// testSchema keeps fake payloads small; the projection contract itself is
// covered by the projector tests against the full default schema.
func testSchema() *models.Schema {
	return &models.Schema{
		Events:     []string{"id", "short_title"},
		Performers: []string{"id", "name"},
		Stats:      []string{"listing_count", "average_price"},
		Venues:     []string{"name", "id", "num_upcoming_events"},
	}
}

func eventRecords(firstID, count int) []interface{} {
	records := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		id := firstID + i
		records = append(records, map[string]interface{}{
			"id":          float64(id),
			"short_title": fmt.Sprintf("event %d", id),
		})
	}

	return records
}

func eventsPage(total, perPage, page int) map[string]interface{} {
	first := (page-1)*perPage + 1
	remaining := total - (page-1)*perPage
	if remaining < 0 {
		remaining = 0
	}
	if remaining > perPage {
		remaining = perPage
	}

	return map[string]interface{}{
		"events": eventRecords(first, remaining),
		"meta": map[string]interface{}{
			"total":    float64(total),
			"per_page": float64(perPage),
			"page":     float64(page),
		},
	}
}

func pageNumber(filter models.Filter) int {
	page, err := strconv.Atoi(filter["page"])
	if err != nil {
		return 0
	}

	return page
}
