package game

// Join-key and derived-column names used by the games table.
const (
	IDColumn            = "game_id"
	HomeTeamIDColumn    = "home_team_id"
	AwayTeamIDColumn    = "away_team_id"
	HomeManagerIDColumn = "home_manager_id"
	AwayManagerIDColumn = "away_manager_id"
	HomeScoreColumn     = "home_score"
	AwayScoreColumn     = "away_score"
	MatchNameColumn     = "match_name"

	ResultHomeColumn = "result_home"
	ResultAwayColumn = "result_away"
	PointsHomeColumn = "points_home"
	PointsAwayColumn = "points_away"

	HomeSuffix = "_home"
	AwaySuffix = "_away"
)

// TransientMergeColumns are bookkeeping columns the games xgoals feed carries
// that have no place in the reporting table.
var TransientMergeColumns = []string{"last_updated_utc"}

// OutputColumns is the reporting column order of the enriched games table.
var OutputColumns = []string{
	IDColumn, "date_time_utc", "season_name", "matchday", MatchNameColumn,
	"attendance", "knockout_game", "extra_time", "penalties",
	"home_penalties", "away_penalties", "expanded_minutes",
	HomeTeamIDColumn, "team_name_home", "team_abbreviation_home",
	AwayTeamIDColumn, "team_name_away", "team_abbreviation_away",
	HomeScoreColumn, AwayScoreColumn, "home_goals", "away_goals",
	"home_team_xgoals", "away_team_xgoals",
	"home_player_xgoals", "away_player_xgoals",
	"goal_difference", "team_xgoal_difference", "player_xgoal_difference",
	"final_score_difference", "home_xpoints", "away_xpoints",
	ResultHomeColumn, PointsHomeColumn, ResultAwayColumn, PointsAwayColumn,
	"referee_id", "referee_name", "stadium_id", "stadium_name",
	HomeManagerIDColumn, "manager_name_home",
	AwayManagerIDColumn, "manager_name_away",
}
