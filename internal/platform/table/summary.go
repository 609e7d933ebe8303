package table

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

const summaryColumnCap = 8

// Summary renders a one-line description of the table for log fields.
func (t Table) Summary() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.B = append(buf.B, "rows="...)
	buf.B = strconv.AppendInt(buf.B, int64(len(t.rows)), 10)
	buf.B = append(buf.B, " cols="...)
	buf.B = strconv.AppendInt(buf.B, int64(len(t.cols)), 10)

	if len(t.cols) > 0 {
		buf.B = append(buf.B, " ["...)
		for i, col := range t.cols {
			if i == summaryColumnCap {
				buf.B = append(buf.B, "..."...)
				break
			}
			if i > 0 {
				buf.B = append(buf.B, ", "...)
			}
			buf.B = append(buf.B, col...)
		}
		buf.B = append(buf.B, ']')
	}
	return buf.String()
}
