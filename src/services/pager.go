package services

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/kmalloy/seatscan/src/models"
)

// DefaultEventsPerPage is the page size requested when the caller does not
// pick one. The server clamps it to its own maximum.
const DefaultEventsPerPage = 1000

// fetchEventPages fetches every page of events matching the filter and joins
// them into one response. Page 1 decides the page count: the server-reported
// per_page is authoritative, since the server may clamp the requested size.
// Any page failure aborts the whole fetch.
func (c *Client) fetchEventPages(ctx context.Context, lookupField, ids string, perPage int, eventType string) (*models.Response, error) {
	tracer := otel.Tracer("fetchEventPages")
	ctx, span := tracer.Start(ctx, "fetchEventPages")
	defer span.End()

	resp, err := c.GetEvents(ctx, buildEventFilter(lookupField, ids, perPage, 1, eventType))
	if err != nil {
		return nil, fmt.Errorf("fetchEventPages: failed to fetch page 1: %w", err)
	}

	if resp.Meta == nil {
		return nil, fmt.Errorf("fetchEventPages: response is missing a meta block")
	}

	perPage = resp.Meta.PerPage
	totalPages := resp.Meta.TotalPages()

	if totalPages > 1 {
		log.Debugf("fetchEventPages: %d records across %d pages", resp.Meta.Total, totalPages)
	}

	tables := []*models.Table{resp.Table}
	last := resp

	for page := 2; page <= totalPages; page++ {
		pageResp, err := c.GetEvents(ctx, buildEventFilter(lookupField, ids, perPage, page, eventType))
		if err != nil {
			return nil, fmt.Errorf("fetchEventPages: failed to fetch page %d of %d: %w", page, totalPages, err)
		}

		tables = append(tables, pageResp.Table)
		last = pageResp
	}

	events, err := models.ConcatTables(tables)
	if err != nil {
		return nil, fmt.Errorf("fetchEventPages: %w", err)
	}

	return &models.Response{
		Meta:  last.Meta,
		Table: events,
	}, nil
}

func buildEventFilter(lookupField, ids string, perPage, page int, eventType string) models.Filter {
	filter := models.Filter{}
	if eventType != "" {
		filter["type"] = eventType
	}

	filter[lookupField] = ids
	filter["per_page"] = strconv.Itoa(perPage)
	filter["page"] = strconv.Itoa(page)

	return filter
}
