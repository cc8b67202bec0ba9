package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmalloy/seatscan/src/models"
)

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("events lookup issues one request with a joined id filter", func(t *testing.T) {
		ft := &fakeTransport{
			handler: func(kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error) {
				return map[string]interface{}{"events": eventRecords(1, 3)}, nil
			},
		}
		client := NewClient(ft, testSchema())

		resp, err := client.GetByID(ctx, models.ResourceEvents, models.IDList{"1", "2", "3"})
		assert.Nil(t, err)
		assert.Equal(t, 3, resp.Table.Len())

		assert.Len(t, ft.requests, 1)
		assert.Equal(t, models.ResourceEvents, ft.requests[0].kind)
		assert.Equal(t, models.Filter{"id": "1,2,3"}, ft.requests[0].filter)
	})

	t.Run("performers and venues route to their endpoints", func(t *testing.T) {
		payloads := map[models.ResourceKind]map[string]interface{}{
			models.ResourcePerformers: {
				"performers": []interface{}{
					map[string]interface{}{"id": float64(7), "name": "performer"},
				},
			},
			models.ResourceVenues: {
				"venues": []interface{}{
					map[string]interface{}{"id": float64(9), "name": "venue", "num_upcoming_events": float64(3)},
				},
			},
		}

		for kind, payload := range payloads {
			ft := &fakeTransport{
				handler: func(k models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error) {
					return payload, nil
				},
			}
			client := NewClient(ft, testSchema())

			resp, err := client.GetByID(ctx, kind, models.IDList{"7"})
			assert.Nil(t, err)
			assert.Equal(t, 1, resp.Table.Len())
			assert.Equal(t, kind, ft.requests[0].kind)
		}
	})

	t.Run("stats is not a top level resource", func(t *testing.T) {
		client := NewClient(&fakeTransport{}, testSchema())

		_, err := client.GetByID(ctx, models.ResourceStats, models.IDList{"1"})
		assert.NotNil(t, err)
	})
}

func TestGetEventsByJoinField(t *testing.T) {
	ctx := context.Background()

	expected := map[EventJoin]string{
		JoinEvents:     "id",
		JoinPerformers: "performers.id",
		JoinVenue:      "venue.id",
	}

	for join, field := range expected {
		t.Run(string(join), func(t *testing.T) {
			ft := &fakeTransport{}
			ft.handler = func(kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error) {
				return eventsPage(1, 100, 1), nil
			}
			client := NewClient(ft, testSchema())

			_, err := client.GetEventsBy(ctx, join, models.IDList{"9"}, 100, "")
			assert.Nil(t, err)
			assert.Equal(t, "9", ft.requests[0].filter[field])
		})
	}

	t.Run("unknown join field is an error", func(t *testing.T) {
		client := NewClient(&fakeTransport{}, testSchema())

		_, err := client.GetEventsBy(ctx, EventJoin("stats"), models.IDList{"9"}, 100, "")
		assert.NotNil(t, err)
	})

	t.Run("default page size is applied when unset", func(t *testing.T) {
		ft := &fakeTransport{}
		ft.handler = func(kind models.ResourceKind, filter models.Filter, id string) (map[string]interface{}, error) {
			return eventsPage(1, 100, 1), nil
		}
		client := NewClient(ft, testSchema())

		_, err := client.GetEventsBy(ctx, JoinVenue, models.IDList{"9"}, 0, "")
		assert.Nil(t, err)
		assert.Equal(t, "1000", ft.requests[0].filter["per_page"])
	})
}
