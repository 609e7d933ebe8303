package usecase

import "github.com/asastats/datamart/internal/platform/table"

const competitionColumn = "competition"

// filterCompetition keeps only rows of the requested competition. Tables
// without a competition column (already scoped feeds) pass through.
func filterCompetition(t table.Table, competition string) table.Table {
	if !t.HasColumn(competitionColumn) {
		return t
	}
	return t.Filter(func(row table.Row) bool {
		value, ok := table.String(row, competitionColumn)
		return ok && value == competition
	})
}
