package services

import (
	"fmt"

	"github.com/kmalloy/seatscan/src/models"
)

// Project validates that a raw response carries the requested resource kind
// and reduces its records to the schema's column whitelist, in schema order.
// A response without the kind key is an API error payload; the raw response
// travels with the error for diagnostics.
func Project(raw map[string]interface{}, kind models.ResourceKind, schema *models.Schema) (*models.Table, error) {
	payload, found := raw[string(kind)]
	if !found {
		return nil, models.NewAPIError(raw)
	}

	columns, err := schema.Columns(kind)
	if err != nil {
		return nil, models.NewAPIError(raw)
	}

	list, ok := payload.([]interface{})
	if !ok {
		return nil, models.NewAPIError(raw)
	}

	records := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]interface{})
		if !ok {
			return nil, models.NewAPIError(raw)
		}

		records = append(records, record)
	}

	projected, err := models.NewTableFromRecords(records).Select(columns)
	if err != nil {
		return nil, fmt.Errorf("Project: %s: %w", kind, err)
	}

	return projected, nil
}
