package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema declares, per resource kind, the ordered list of columns retained
// when projecting raw API records into a table.
type Schema struct {
	Events     []string `yaml:"events"`
	Performers []string `yaml:"performers"`
	Stats      []string `yaml:"stats"`
	Venues     []string `yaml:"venues"`
}

// DefaultSchema returns the column whitelists used when the caller does not
// supply its own.
func DefaultSchema() *Schema {
	return &Schema{
		Events: []string{
			"type",
			"id",
			"datetime_utc",
			"venue",
			"performers",
			"short_title",
			"stats",
			"url",
			"score",
			"announce_date",
			"status",
			"access_method",
			"visible_at",
		},
		Performers: []string{
			"type",
			"name",
			"id",
			"has_upcoming_events",
			"primary",
			"url",
			"score",
			"slug",
			"num_upcoming_events",
		},
		Stats: []string{
			"listing_count",
			"average_price",
			"median_price",
			"lowest_price",
			"highest_price",
		},
		Venues: []string{
			"state",
			"postal_code",
			"name",
			"timezone",
			"url",
			"score",
			"location",
			"country",
			"num_upcoming_events",
			"city",
			"slug",
			"id",
			"access_method",
			"metro_code",
			"capacity",
		},
	}
}

// Columns returns the whitelist for a resource kind.
func (s *Schema) Columns(kind ResourceKind) ([]string, error) {
	switch kind {
	case ResourceEvents:
		return s.Events, nil
	case ResourcePerformers:
		return s.Performers, nil
	case ResourceStats:
		return s.Stats, nil
	case ResourceVenues:
		return s.Venues, nil
	default:
		return nil, fmt.Errorf("Schema.Columns: unknown resource kind %q", kind)
	}
}

// LoadSchemaFromFile reads a schema from a yaml file. Kinds omitted from the
// file fall back to the default whitelists.
func LoadSchemaFromFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadSchemaFromFile: failed to read %s: %w", path, err)
	}

	schema := &Schema{}
	if err := yaml.Unmarshal(data, schema); err != nil {
		return nil, fmt.Errorf("LoadSchemaFromFile: failed to parse %s: %w", path, err)
	}

	defaults := DefaultSchema()
	if len(schema.Events) == 0 {
		schema.Events = defaults.Events
	}
	if len(schema.Performers) == 0 {
		schema.Performers = defaults.Performers
	}
	if len(schema.Stats) == 0 {
		schema.Stats = defaults.Stats
	}
	if len(schema.Venues) == 0 {
		schema.Venues = defaults.Venues
	}

	return schema, nil
}
