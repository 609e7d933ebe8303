package table

import (
	"fmt"
	"sort"
	"strconv"
)

// Row is a single record keyed by column name. Cell values are whatever the
// upstream JSON decoder produced (string, float64, bool, nil, or a list).
type Row map[string]any

// Table is an in-memory relation: an ordered set of named columns and a slice
// of rows. The zero value is an empty relation with no columns.
type Table struct {
	cols []string
	rows []Row
}

func New(cols ...string) Table {
	out := Table{cols: make([]string, 0, len(cols))}
	seen := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		out.cols = append(out.cols, col)
	}
	return out
}

func Empty() Table {
	return Table{}
}

// FromRecords builds a table from decoded JSON objects. Columns unseen so far
// are appended in sorted order per record so the result is deterministic.
func FromRecords(records []map[string]any) Table {
	out := Table{rows: make([]Row, 0, len(records))}
	seen := make(map[string]struct{})
	for _, record := range records {
		fresh := make([]string, 0, 4)
		for col := range record {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				fresh = append(fresh, col)
			}
		}
		sort.Strings(fresh)
		out.cols = append(out.cols, fresh...)
		out.rows = append(out.rows, Row(record))
	}
	return out
}

func (t Table) Len() int {
	return len(t.rows)
}

func (t Table) IsEmpty() bool {
	return len(t.rows) == 0
}

func (t Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

func (t Table) HasColumn(name string) bool {
	for _, col := range t.cols {
		if col == name {
			return true
		}
	}
	return false
}

func (t Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t Table) Row(i int) Row {
	return t.rows[i]
}

// Append adds a row, extending the column set with any unseen keys in sorted
// order.
func (t *Table) Append(row Row) {
	fresh := make([]string, 0, 4)
	for col := range row {
		if !t.HasColumn(col) {
			fresh = append(fresh, col)
		}
	}
	sort.Strings(fresh)
	t.cols = append(t.cols, fresh...)
	t.rows = append(t.rows, row)
}

func (t Table) Clone() Table {
	out := Table{
		cols: make([]string, len(t.cols)),
		rows: make([]Row, len(t.rows)),
	}
	copy(out.cols, t.cols)
	for i, row := range t.rows {
		cloned := make(Row, len(row))
		for col, value := range row {
			cloned[col] = value
		}
		out.rows[i] = cloned
	}
	return out
}

func (t Table) Filter(keep func(Row) bool) Table {
	out := Table{cols: t.Columns()}
	for _, row := range t.rows {
		if keep(row) {
			out.rows = append(out.rows, row)
		}
	}
	return out
}

// Partition splits the table into rows matching the predicate and the rest.
// Both halves share the column order of the receiver.
func (t Table) Partition(match func(Row) bool) (Table, Table) {
	matched := Table{cols: t.Columns()}
	rest := Table{cols: t.Columns()}
	for _, row := range t.rows {
		if match(row) {
			matched.rows = append(matched.rows, row)
		} else {
			rest.rows = append(rest.rows, row)
		}
	}
	return matched, rest
}

// Select projects the table onto the given columns in the given order. It
// fails on the first column the table does not carry, leaving the receiver
// untouched.
func (t Table) Select(cols ...string) (Table, error) {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return Table{}, fmt.Errorf("select: missing column %q", col)
		}
	}
	out := New(cols...)
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		projected := make(Row, len(out.cols))
		for _, col := range out.cols {
			projected[col] = row[col]
		}
		out.rows = append(out.rows, projected)
	}
	return out, nil
}

func (t Table) DropColumns(cols ...string) Table {
	drop := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		drop[col] = struct{}{}
	}
	out := Table{}
	for _, col := range t.cols {
		if _, ok := drop[col]; !ok {
			out.cols = append(out.cols, col)
		}
	}
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		kept := make(Row, len(out.cols))
		for _, col := range out.cols {
			if value, ok := row[col]; ok {
				kept[col] = value
			}
		}
		out.rows = append(out.rows, kept)
	}
	return out
}

// SuffixColumns renames every column to name+suffix, except the listed ones.
// Used to disambiguate home/away sides before a join.
func (t Table) SuffixColumns(suffix string, except ...string) Table {
	keep := make(map[string]struct{}, len(except))
	for _, col := range except {
		keep[col] = struct{}{}
	}
	renamed := make(map[string]string, len(t.cols))
	out := Table{cols: make([]string, len(t.cols))}
	for i, col := range t.cols {
		name := col
		if _, ok := keep[col]; !ok {
			name = col + suffix
		}
		renamed[col] = name
		out.cols[i] = name
	}
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		next := make(Row, len(row))
		for col, value := range row {
			next[renamed[col]] = value
		}
		out.rows = append(out.rows, next)
	}
	return out
}

// EnsureColumn adds the column with a default value when absent. Existing
// columns and cells are left alone.
func (t Table) EnsureColumn(name string, def any) Table {
	if t.HasColumn(name) {
		return t
	}
	out := Table{cols: append(t.Columns(), name)}
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		next := make(Row, len(row)+1)
		for col, value := range row {
			next[col] = value
		}
		next[name] = def
		out.rows = append(out.rows, next)
	}
	return out
}

// Float reads a numeric cell. JSON numbers arrive as float64; int variants
// show up from hand-built fixtures.
func Float(row Row, col string) (float64, bool) {
	switch v := row[col].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func String(row Row, col string) (string, bool) {
	value, ok := row[col].(string)
	return value, ok
}
