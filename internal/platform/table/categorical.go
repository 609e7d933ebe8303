package table

// Categorize canonicalizes string cells of the given columns through an
// intern pool, the tabular-store analogue of a categorical dtype: repeated
// values share one backing string instead of one copy per row. Missing
// columns are skipped.
func (t Table) Categorize(cols ...string) Table {
	present := make([]string, 0, len(cols))
	for _, col := range cols {
		if t.HasColumn(col) {
			present = append(present, col)
		}
	}
	if len(present) == 0 {
		return t
	}

	pool := make(map[string]string)
	intern := func(s string) string {
		if canonical, ok := pool[s]; ok {
			return canonical
		}
		pool[s] = s
		return s
	}

	out := Table{cols: t.Columns()}
	out.rows = make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		next := make(Row, len(row))
		for name, cell := range row {
			next[name] = cell
		}
		for _, col := range present {
			if s, ok := next[col].(string); ok {
				next[col] = intern(s)
			}
		}
		out.rows = append(out.rows, next)
	}
	return out
}
