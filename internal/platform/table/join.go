package table

import (
	"fmt"
	"math"
)

// JoinSpec names the key columns of a left join. RightKey defaults to
// LeftKey when empty.
type JoinSpec struct {
	LeftKey  string
	RightKey string
}

// LeftJoin joins the receiver with right, preserving left cardinality. Left
// rows without a match keep nil cells for the right-side columns; right rows
// matching several left rows are repeated. On a column-name collision the
// left value wins and the incoming column is dropped, so no suffixed
// duplicates ever appear in the result. The right key column is never
// carried over.
func (t Table) LeftJoin(right Table, spec JoinSpec) Table {
	leftKey := spec.LeftKey
	rightKey := spec.RightKey
	if rightKey == "" {
		rightKey = leftKey
	}

	incoming := make([]string, 0, len(right.cols))
	for _, col := range right.cols {
		if col == rightKey || t.HasColumn(col) {
			continue
		}
		incoming = append(incoming, col)
	}

	index := make(map[string][]Row, right.Len())
	for _, row := range right.rows {
		key, ok := joinKey(row[rightKey])
		if !ok {
			continue
		}
		index[key] = append(index[key], row)
	}

	out := Table{cols: append(t.Columns(), incoming...)}
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		var matches []Row
		if key, ok := joinKey(row[leftKey]); ok {
			matches = index[key]
		}
		if len(matches) == 0 {
			out.rows = append(out.rows, mergeRows(row, nil, incoming))
			continue
		}
		for _, match := range matches {
			out.rows = append(out.rows, mergeRows(row, match, incoming))
		}
	}
	return out
}

func mergeRows(left, right Row, incoming []string) Row {
	merged := make(Row, len(left)+len(incoming))
	for col, value := range left {
		merged[col] = value
	}
	for _, col := range incoming {
		if right == nil {
			merged[col] = nil
			continue
		}
		merged[col] = right[col]
	}
	return merged
}

// joinKey normalizes a cell into a comparable key. Integral floats collapse
// to their integer text so ids survive a JSON round trip.
func joinKey(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return fmt.Sprintf("%d", int64(v)), true
		}
		return fmt.Sprintf("%v", v), true
	case int:
		return fmt.Sprintf("%d", v), true
	case int64:
		return fmt.Sprintf("%d", v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
