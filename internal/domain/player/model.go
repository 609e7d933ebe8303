package player

// Key and attribute column names of the players dimension.
const (
	IDColumn          = "player_id"
	NameColumn        = "player_name"
	TeamIDColumn      = "team_id"
	CompetitionColumn = "competition"

	PrimaryBroadPositionColumn = "primary_broad_position"

	// PositionGoalkeeper is the broad-position flag splitting keepers from
	// field players.
	PositionGoalkeeper = "GK"
)

// CategoricalColumns are interned after the statistics merges.
var CategoricalColumns = []string{
	"nationality",
	PrimaryBroadPositionColumn,
	"primary_general_position",
	"secondary_broad_position",
	"secondary_general_position",
}

// OutputColumns is the reporting column order of the enriched players table.
var OutputColumns = []string{
	IDColumn, NameColumn, "birth_date", "nationality",
	"height_ft", "height_in", "weight_lb",
	PrimaryBroadPositionColumn, "primary_general_position",
	"secondary_broad_position", "secondary_general_position",
	TeamIDColumn, "team_name", "season_name", CompetitionColumn,
	"general_position", "minutes_played", "shots", "shots_on_target",
	"goals", "xgoals", "xplace", "goals_minus_xgoals",
	"key_passes", "primary_assists", "xassists",
	"primary_assists_minus_xassists", "xgoals_plus_xassists",
	"points_added", "xpoints_added",
	"attempted_passes", "pass_completion_percentage",
	"xpass_completion_percentage", "passes_completed_over_expected",
	"passes_completed_over_expected_p100",
	"avg_distance_yds", "avg_vertical_distance_yds",
	"share_team_touches", "count_games", "data",
}

// GoalkeeperColumns extends OutputColumns with the keeper-only facts.
var GoalkeeperColumns = append(append([]string{}, OutputColumns...),
	"shots_faced", "goals_conceded", "saves", "share_headed_shots",
	"xgoals_gk_faced", "goals_minus_xgoals_gk", "goals_divided_by_xgoals_gk",
)
