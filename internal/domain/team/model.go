package team

// Key and attribute column names of the teams dimension.
const (
	IDColumn           = "team_id"
	NameColumn         = "team_name"
	AbbreviationColumn = "team_abbreviation"
	CompetitionColumn  = "competition"
)

// CategoricalColumns are low-cardinality string columns worth interning.
var CategoricalColumns = []string{NameColumn, AbbreviationColumn}

// DefaultedColumns must exist after the statistics merges even when a stat
// source is missing; zero stands in for an absent measurement.
var DefaultedColumns = map[string]any{
	"avg_vertical_distance_diff": float64(0),
}

// OutputColumns is the reporting column order of the enriched teams table.
var OutputColumns = []string{
	IDColumn, NameColumn, "team_short_name", AbbreviationColumn,
	CompetitionColumn, "minutes", "data", "count_games",
	"shots_for", "shots_against",
	"goals_for", "goals_against", "goal_difference",
	"xgoals_for", "xgoals_against", "xgoal_difference",
	"goal_difference_minus_xgoal_difference",
	"points", "xpoints",
	"attempted_passes_for", "pass_completion_percentage_for",
	"xpass_completion_percentage_for", "passes_completed_over_expected_for",
	"passes_completed_over_expected_p100_for", "avg_vertical_distance_for",
	"attempted_passes_against", "pass_completion_percentage_against",
	"xpass_completion_percentage_against", "passes_completed_over_expected_against",
	"passes_completed_over_expected_p100_against", "avg_vertical_distance_against",
	"passes_completed_over_expected_difference", "avg_vertical_distance_diff",
}
