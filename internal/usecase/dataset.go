package usecase

import (
	"fmt"

	"github.com/asastats/datamart/internal/platform/table"
)

// Fixed table keys of the dataset mapping.
const (
	TableGames        = "games"
	TablePlayers      = "players"
	TableFieldPlayers = "field_players"
	TableGoalkeepers  = "goalkeepers"
	TableTeams        = "teams"
	TableStadium      = "stadium"
	TableManagers     = "mgrs"
	TableReferees     = "refs"
)

// Issue records one degraded enrichment step. The pipeline never fails hard:
// a fetch or merge that goes wrong leaves its table partial or empty and is
// reported here instead.
type Issue struct {
	Table string
	Stage string
	Err   error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s/%s: %v", i.Table, i.Stage, i.Err)
}

// Dataset is the denormalized output of one pipeline run.
type Dataset struct {
	Games        table.Table
	Players      table.Table
	FieldPlayers table.Table
	Goalkeepers  table.Table
	Teams        table.Table
	Stadiums     table.Table
	Managers     table.Table
	Referees     table.Table

	Issues []Issue
}

// Tables exposes the dataset under its fixed reporting keys.
func (d Dataset) Tables() map[string]table.Table {
	return map[string]table.Table{
		TableGames:        d.Games,
		TablePlayers:      d.Players,
		TableFieldPlayers: d.FieldPlayers,
		TableGoalkeepers:  d.Goalkeepers,
		TableTeams:        d.Teams,
		TableStadium:      d.Stadiums,
		TableManagers:     d.Managers,
		TableReferees:     d.Referees,
	}
}

// Complete reports whether every enrichment step succeeded.
func (d Dataset) Complete() bool {
	return len(d.Issues) == 0
}
