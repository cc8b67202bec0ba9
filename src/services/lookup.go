package services

import (
	"context"
	"fmt"

	"github.com/kmalloy/seatscan/src/models"
)

// EventJoin selects the field a multi-id event lookup joins on.
type EventJoin string

const (
	JoinPerformers EventJoin = "performers"
	JoinVenue      EventJoin = "venue"
	JoinEvents     EventJoin = "events"
)

// GetByID fetches events, performers or venues for a list of ids in a single
// request. The ids are flattened to the comma-joined form the API expects.
func (c *Client) GetByID(ctx context.Context, kind models.ResourceKind, ids models.IDList) (*models.Response, error) {
	filter := models.Filter{"id": ids.Join()}

	switch kind {
	case models.ResourceEvents:
		return c.GetEvents(ctx, filter)
	case models.ResourcePerformers:
		return c.GetPerformers(ctx, filter)
	case models.ResourceVenues:
		return c.GetVenues(ctx, filter)
	default:
		return nil, fmt.Errorf("Client.GetByID: unsupported resource kind %q", kind)
	}
}

// GetEventsBy fetches every event joined to the given performer, venue or
// event ids, walking all pages. A perPage of zero or less selects
// DefaultEventsPerPage. An empty eventType applies no type filter.
func (c *Client) GetEventsBy(ctx context.Context, join EventJoin, ids models.IDList, perPage int, eventType string) (*models.Response, error) {
	if perPage <= 0 {
		perPage = DefaultEventsPerPage
	}

	var lookupField string
	switch join {
	case JoinEvents:
		lookupField = "id"
	case JoinPerformers, JoinVenue:
		lookupField = string(join) + ".id"
	default:
		return nil, fmt.Errorf("Client.GetEventsBy: unsupported join field %q", join)
	}

	return c.fetchEventPages(ctx, lookupField, ids.Join(), perPage, eventType)
}
