package services

import (
	"context"
	"fmt"

	"github.com/kmalloy/seatscan/src/models"
)

// Transport performs one authenticated round trip against the marketplace API
// and returns the decoded JSON body. Cancellation and timeouts live here; the
// client on top issues one call at a time and keeps no state between calls.
type Transport interface {
	SendRequest(ctx context.Context, kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error)
}

// Client wraps a Transport with schema projection, pagination and the
// convenience lookups. A nil schema selects the default whitelists.
type Client struct {
	transport Transport
	schema    *models.Schema
}

func NewClient(transport Transport, schema *models.Schema) *Client {
	if schema == nil {
		schema = models.DefaultSchema()
	}

	return &Client{
		transport: transport,
		schema:    schema,
	}
}

func (c *Client) send(ctx context.Context, kind models.ResourceKind, filter models.Filter) (*models.Response, error) {
	raw, err := c.transport.SendRequest(ctx, kind, filter, "")
	if err != nil {
		return nil, fmt.Errorf("Client.send: failed to fetch %s: %w", kind, err)
	}

	table, err := Project(raw, kind, c.schema)
	if err != nil {
		return nil, err
	}

	meta, err := models.MetaFromRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("Client.send: %w", err)
	}

	return &models.Response{
		Meta:  meta,
		Table: table,
	}, nil
}

// GetEvents fetches a single page of events matching the filter.
func (c *Client) GetEvents(ctx context.Context, filter models.Filter) (*models.Response, error) {
	return c.send(ctx, models.ResourceEvents, filter)
}

// GetPerformers fetches a single page of performers matching the filter.
func (c *Client) GetPerformers(ctx context.Context, filter models.Filter) (*models.Response, error) {
	return c.send(ctx, models.ResourcePerformers, filter)
}

// GetVenues fetches a single page of venues matching the filter.
func (c *Client) GetVenues(ctx context.Context, filter models.Filter) (*models.Response, error) {
	return c.send(ctx, models.ResourceVenues, filter)
}
