package table

// Explode expands list-valued cells of the column into one row per element.
// Scalar and nil cells pass through unchanged; an empty list degrades to a
// single row with a nil cell so no record is silently lost.
func (t Table) Explode(col string) Table {
	if !t.HasColumn(col) {
		return t
	}
	out := Table{cols: t.Columns()}
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		elements, ok := listElements(row[col])
		if !ok {
			out.rows = append(out.rows, row)
			continue
		}
		if len(elements) == 0 {
			out.rows = append(out.rows, cloneWith(row, col, nil))
			continue
		}
		for _, element := range elements {
			out.rows = append(out.rows, cloneWith(row, col, element))
		}
	}
	return out
}

func listElements(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func cloneWith(row Row, col string, value any) Row {
	next := make(Row, len(row))
	for name, cell := range row {
		next[name] = cell
	}
	next[col] = value
	return next
}
