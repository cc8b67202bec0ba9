package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Meta is the pagination block returned alongside paged resources. The server
// may clamp the requested per_page value, so PerPage reflects what the server
// actually used, not what was asked for.
type Meta struct {
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

// TotalPages computes the number of pages needed to cover Total records.
func (m Meta) TotalPages() int {
	if m.PerPage <= 0 {
		return 0
	}

	return int(math.Ceil(float64(m.Total) / float64(m.PerPage)))
}

// MetaFromRaw extracts the meta block from a decoded response. Responses
// without a meta key yield nil without error.
func MetaFromRaw(raw map[string]interface{}) (*Meta, error) {
	block, found := raw["meta"]
	if !found {
		return nil, nil
	}

	buf, err := json.Marshal(block)
	if err != nil {
		return nil, fmt.Errorf("MetaFromRaw: failed to re-encode meta block: %w", err)
	}

	var meta Meta
	if err := json.Unmarshal(buf, &meta); err != nil {
		return nil, fmt.Errorf("MetaFromRaw: failed to decode meta block: %w", err)
	}

	return &meta, nil
}
