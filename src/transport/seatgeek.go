package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kmalloy/seatscan/src/models"
)

const DefaultBaseURL = "https://api.seatgeek.com/2"

// Client performs authenticated HTTP calls against the marketplace API and
// returns the decoded JSON body as a raw map. It deliberately does not
// interpret error payloads: a response that decodes but lacks the requested
// resource key is still returned, and the projection layer decides whether it
// is an error. Safe for concurrent use.
type Client struct {
	http   *resty.Client
	devKey string
}

func NewClient(devKey string) *Client {
	return NewClientWithBaseURL(devKey, DefaultBaseURL)
}

func NewClientWithBaseURL(devKey, baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Accept", "application/json")

	return &Client{
		http:   client,
		devKey: devKey,
	}
}

// SendRequest issues a single GET against /<kind> or /<kind>/<id> with the
// filter args as query parameters.
func (c *Client) SendRequest(ctx context.Context, kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error) {
	path := "/" + string(kind)
	if id != "" {
		path += "/" + id
	}

	requestID := uuid.New().String()

	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("client_id", c.devKey)

	for key, value := range filter {
		req.SetQueryParam(key, value)
	}

	log.WithField("request_id", requestID).Debugf("SendRequest: fetching %s with filter %v", path, filter)

	res, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("SendRequest: failed to fetch %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(res.Body(), &raw); err != nil {
		return nil, fmt.Errorf("SendRequest: failed to decode json from %s, http code %v: %w", path, res.Status(), err)
	}

	if res.IsError() {
		log.WithField("request_id", requestID).Warnf("SendRequest: %s returned http code %v", path, res.Status())
	}

	return raw, nil
}
