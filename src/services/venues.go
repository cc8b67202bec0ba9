package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/kmalloy/seatscan/src/models"
)

// GetVenueIDs resolves venue names to venue ids. Each name is searched with
// an exact-name filter; a search that comes back as an API error marks the
// name failed and the loop moves on, the one place a partial failure is
// tolerated. Venues with no upcoming events are dropped as stale. The result
// holds one row per surviving candidate with columns venue, venue_id and
// searched_venue, so ambiguous names can be mapped back to their candidates.
// Failed names are logged, not returned. If every name fails the empty
// concatenation is an error, distinct from a zero-row result.
func (c *Client) GetVenueIDs(ctx context.Context, names ...string) (*models.Table, error) {
	tracer := otel.Tracer("GetVenueIDs")
	ctx, span := tracer.Start(ctx, "GetVenueIDs")
	defer span.End()

	var candidates []*models.Table
	var failed []string

	for _, name := range names {
		resp, err := c.GetVenues(ctx, models.Filter{"name": name})
		if err != nil {
			var apiErr *models.APIError
			if errors.As(err, &apiErr) {
				failed = append(failed, name)
				continue
			}

			return nil, fmt.Errorf("Client.GetVenueIDs: failed to search venue %q: %w", name, err)
		}

		if resp.Table.Len() == 0 {
			continue
		}

		upcoming := resp.Table.Filter(func(row map[string]interface{}) bool {
			count, ok := asFloat(row["num_upcoming_events"])
			return ok && count > 0
		})

		matches := &models.Table{Columns: []string{"venue", "venue_id", "searched_venue"}}
		for _, row := range upcoming.Rows {
			matches.Rows = append(matches.Rows, map[string]interface{}{
				"venue":          row["name"],
				"venue_id":       row["id"],
				"searched_venue": name,
			})
		}

		candidates = append(candidates, matches)
	}

	if len(failed) > 0 {
		log.Warnf("GetVenueIDs: could not find venues: %s", strings.Join(failed, ", "))
	}

	table, err := models.ConcatTables(candidates)
	if err != nil {
		return nil, fmt.Errorf("Client.GetVenueIDs: %w", err)
	}

	return table, nil
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
