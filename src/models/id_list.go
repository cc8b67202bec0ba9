package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IDList is an ordered list of record ids. The transport layer expects ids as
// a single comma-joined string, so all accepted input shapes are normalized
// into an IDList at the boundary.
type IDList []string

// Join flattens the list into the comma-separated form the API expects.
func (ids IDList) Join() string {
	return strings.Join(ids, ",")
}

// IDListFromColumn normalizes a table column into an IDList. Numeric values
// decoded from JSON arrive as float64 and are rendered without an exponent so
// large ids survive the round trip.
func IDListFromColumn(table *Table, column string) (IDList, error) {
	values, err := table.Column(column)
	if err != nil {
		return nil, fmt.Errorf("IDListFromColumn: %w", err)
	}

	ids := make(IDList, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case string:
			ids = append(ids, v)
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("IDListFromColumn: column %q holds non-integer value %v", column, v)
			}
			ids = append(ids, strconv.FormatFloat(v, 'f', -1, 64))
		case int:
			ids = append(ids, strconv.Itoa(v))
		case int64:
			ids = append(ids, strconv.FormatInt(v, 10))
		default:
			return nil, fmt.Errorf("IDListFromColumn: column %q holds unsupported id type %T", column, value)
		}
	}

	return ids, nil
}
