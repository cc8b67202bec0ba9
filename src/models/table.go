package models

import (
	"fmt"
	"sort"
)

// Table is an ordered collection of rows with named columns. Column order is
// significant: projection and CSV export both preserve it.
type Table struct {
	Columns []string
	Rows    []map[string]interface{}
}

// NewTableFromRecords builds a table from a list of raw records. Raw records
// decode to Go maps with no stable key order, so columns are sorted; the
// schema imposes the final order during projection.
func NewTableFromRecords(records []map[string]interface{}) *Table {
	table := &Table{}
	seen := make(map[string]struct{})

	for _, record := range records {
		for key := range record {
			if _, found := seen[key]; !found {
				seen[key] = struct{}{}
				table.Columns = append(table.Columns, key)
			}
		}
	}

	sort.Strings(table.Columns)

	table.Rows = append(table.Rows, records...)

	return table
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}

	return false
}

// Select returns a new table holding exactly the requested columns in the
// requested order. A column missing from a non-empty table is an error; an
// empty table accepts any column list, which keeps zero-row pages projectable.
func (t *Table) Select(columns []string) (*Table, error) {
	if t.Len() > 0 {
		for _, col := range columns {
			if !t.HasColumn(col) {
				return nil, fmt.Errorf("Table.Select: column %q not found", col)
			}
		}
	}

	out := &Table{Columns: append([]string{}, columns...)}

	for _, row := range t.Rows {
		selected := make(map[string]interface{}, len(columns))
		for _, col := range columns {
			selected[col] = row[col]
		}

		out.Rows = append(out.Rows, selected)
	}

	return out, nil
}

// Column returns all values of a single column in row order.
func (t *Table) Column(name string) ([]interface{}, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("Table.Column: column %q not found", name)
	}

	values := make([]interface{}, 0, t.Len())
	for _, row := range t.Rows {
		values = append(values, row[name])
	}

	return values, nil
}

// Filter returns a new table containing only the rows for which keep returns
// true. The column list is preserved.
func (t *Table) Filter(keep func(row map[string]interface{}) bool) *Table {
	out := &Table{Columns: append([]string{}, t.Columns...)}

	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}

	return out
}

// ConcatTables joins tables top to bottom preserving input order. Column
// layout is taken from the first table. Concatenating zero tables is an
// error, distinct from concatenating tables that happen to hold zero rows.
func ConcatTables(tables []*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("ConcatTables: no tables to concatenate")
	}

	out := &Table{Columns: append([]string{}, tables[0].Columns...)}
	for _, table := range tables {
		out.Rows = append(out.Rows, table.Rows...)
	}

	return out, nil
}
