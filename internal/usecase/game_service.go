package usecase

import (
	"context"

	"github.com/asastats/datamart/internal/domain/game"
	"github.com/asastats/datamart/internal/domain/manager"
	"github.com/asastats/datamart/internal/domain/referee"
	"github.com/asastats/datamart/internal/domain/stadium"
	"github.com/asastats/datamart/internal/domain/team"
	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/table"
)

// GameService builds the enriched games table: venue, referee, team and
// manager names attached, per-side results and points derived, and the game
// xgoals feed merged in. Every step degrades independently; a broken join
// leaves the table as it was and later steps work with what survived.
type GameService struct {
	provider StatsProvider
	logger   *logging.Logger
}

func NewGameService(provider StatsProvider, logger *logging.Logger) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameService{provider: provider, logger: logger}
}

func (s *GameService) Build(ctx context.Context, competition string, teams, stadiums, managers, referees table.Table) (table.Table, []Issue) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Build")
	defer span.End()

	var issues []Issue
	fail := func(stage string, err error) {
		s.logger.ErrorContext(ctx, "enrich games",
			"competition", competition, "stage", stage, "error", err)
		issues = append(issues, Issue{Table: TableGames, Stage: stage, Err: err})
	}

	games, err := s.provider.Games(ctx, competition)
	if err != nil {
		fail("fetch", err)
		return table.Empty(), issues
	}

	if names, err := stadiums.Select(stadium.IDColumn, stadium.NameColumn); err != nil {
		fail("stadium names", err)
	} else {
		games = games.LeftJoin(names, table.JoinSpec{LeftKey: stadium.IDColumn})
	}

	if names, err := referees.Select(referee.IDColumn, referee.NameColumn); err != nil {
		fail("referee names", err)
	} else {
		games = games.LeftJoin(names, table.JoinSpec{LeftKey: referee.IDColumn})
	}

	if sides, err := teams.Select(team.IDColumn, team.NameColumn, team.AbbreviationColumn); err != nil {
		fail("team names", err)
	} else {
		home := sides.SuffixColumns(game.HomeSuffix, team.IDColumn)
		away := sides.SuffixColumns(game.AwaySuffix, team.IDColumn)
		games = games.LeftJoin(home, table.JoinSpec{LeftKey: game.HomeTeamIDColumn, RightKey: team.IDColumn})
		games = games.LeftJoin(away, table.JoinSpec{LeftKey: game.AwayTeamIDColumn, RightKey: team.IDColumn})
	}

	if sides, err := managers.Select(manager.IDColumn, manager.NameColumn); err != nil {
		fail("manager names", err)
	} else {
		home := sides.SuffixColumns(game.HomeSuffix, manager.IDColumn)
		away := sides.SuffixColumns(game.AwaySuffix, manager.IDColumn)
		games = games.LeftJoin(home, table.JoinSpec{LeftKey: game.HomeManagerIDColumn, RightKey: manager.IDColumn})
		games = games.LeftJoin(away, table.JoinSpec{LeftKey: game.AwayManagerIDColumn, RightKey: manager.IDColumn})
	}

	if games.HasColumn(game.HomeScoreColumn) && games.HasColumn(game.AwayScoreColumn) {
		games = deriveResults(games)
	} else {
		fail("results", errMissingScores)
	}

	if xgoals, err := s.provider.GameXGoals(ctx, competition); err != nil {
		fail("merge xgoals", err)
	} else {
		games = games.LeftJoin(xgoals, table.JoinSpec{LeftKey: game.IDColumn})
	}

	if games.HasColumn("team_abbreviation_home") && games.HasColumn("team_abbreviation_away") {
		games = deriveMatchNames(games)
	} else {
		fail("match names", errMissingAbbreviations)
	}

	games = games.DropColumns(game.TransientMergeColumns...)

	if selected, err := games.Select(game.OutputColumns...); err != nil {
		fail("select", err)
	} else {
		games = selected
	}

	return games, issues
}

// deriveResults appends result and points columns for both sides. Rows with
// an unreadable score keep nil cells.
func deriveResults(games table.Table) table.Table {
	cols := append(games.Columns(),
		game.ResultHomeColumn, game.PointsHomeColumn,
		game.ResultAwayColumn, game.PointsAwayColumn,
	)
	out := table.New(cols...)
	for _, row := range games.Rows() {
		next := make(table.Row, len(row)+4)
		for col, value := range row {
			next[col] = value
		}

		home, homeOK := table.Float(row, game.HomeScoreColumn)
		away, awayOK := table.Float(row, game.AwayScoreColumn)
		if homeOK && awayOK {
			result := game.ResultFromScores(home, away)
			next[game.ResultHomeColumn] = string(result)
			next[game.PointsHomeColumn] = result.Points()
			next[game.ResultAwayColumn] = string(result.Complement())
			next[game.PointsAwayColumn] = result.Complement().Points()
		} else {
			next[game.ResultHomeColumn] = nil
			next[game.PointsHomeColumn] = nil
			next[game.ResultAwayColumn] = nil
			next[game.PointsAwayColumn] = nil
		}
		out.Append(next)
	}
	return out
}

// deriveMatchNames appends the "HOME v AWAY" label from the abbreviations.
func deriveMatchNames(games table.Table) table.Table {
	out := table.New(append(games.Columns(), game.MatchNameColumn)...)
	for _, row := range games.Rows() {
		next := make(table.Row, len(row)+1)
		for col, value := range row {
			next[col] = value
		}

		home, homeOK := table.String(row, "team_abbreviation_home")
		away, awayOK := table.String(row, "team_abbreviation_away")
		if homeOK && awayOK {
			next[game.MatchNameColumn] = home + " v " + away
		} else {
			next[game.MatchNameColumn] = nil
		}
		out.Append(next)
	}
	return out
}
