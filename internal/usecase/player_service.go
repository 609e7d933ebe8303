package usecase

import (
	"context"

	"github.com/asastats/datamart/internal/domain/player"
	"github.com/asastats/datamart/internal/domain/team"
	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/table"
)

// PlayerService builds the enriched players table and its disjoint keeper /
// field-player split. Players with several team associations are expanded
// into one row per team before the team names are attached.
type PlayerService struct {
	provider StatsProvider
	logger   *logging.Logger
}

// PlayerTables is the player side of the dataset. Goalkeepers and
// FieldPlayers partition Players by broad position.
type PlayerTables struct {
	Players      table.Table
	FieldPlayers table.Table
	Goalkeepers  table.Table
}

func NewPlayerService(provider StatsProvider, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{provider: provider, logger: logger}
}

func (s *PlayerService) Build(ctx context.Context, competition string, teams table.Table) (PlayerTables, []Issue) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Build")
	defer span.End()

	var issues []Issue

	players, err := s.provider.Players(ctx, competition)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch players dimension",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TablePlayers, Stage: "fetch", Err: err})
		return PlayerTables{}, issues
	}
	players = filterCompetition(players, competition)

	merges := []struct {
		stage string
		fetch func(context.Context, string) (table.Table, error)
	}{
		{"merge goals-added", s.provider.PlayerGoalsAdded},
		{"merge xgoals", s.provider.PlayerXGoals},
		{"merge xpass", s.provider.PlayerXPass},
	}
	for _, m := range merges {
		stats, err := m.fetch(ctx, competition)
		if err != nil {
			s.logger.ErrorContext(ctx, "fetch player statistics",
				"competition", competition, "stage", m.stage, "error", err)
			issues = append(issues, Issue{Table: TablePlayers, Stage: m.stage, Err: err})
			continue
		}
		players = players.LeftJoin(stats, table.JoinSpec{LeftKey: player.IDColumn})
	}

	players = players.Categorize(player.CategoricalColumns...)

	// Name lookup captured before the explode so keeper facts join against
	// one row per player.
	playerNames, namesErr := players.Select(player.IDColumn, player.NameColumn)
	if namesErr != nil {
		s.logger.WarnContext(ctx, "project player names",
			"competition", competition, "error", namesErr)
	}

	players = players.Explode(player.TeamIDColumn)
	teamNames, err := teams.Select(team.IDColumn, team.NameColumn, team.AbbreviationColumn)
	if err != nil {
		s.logger.WarnContext(ctx, "attach team names to players",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TablePlayers, Stage: "team names", Err: err})
	} else {
		players = players.LeftJoin(teamNames, table.JoinSpec{LeftKey: player.TeamIDColumn, RightKey: team.IDColumn})
	}

	if selected, err := players.Select(player.OutputColumns...); err != nil {
		s.logger.WarnContext(ctx, "order player columns",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TablePlayers, Stage: "select", Err: err})
	} else {
		players = selected
	}

	goalkeepers, fieldPlayers := players.Partition(func(row table.Row) bool {
		position, ok := table.String(row, player.PrimaryBroadPositionColumn)
		return ok && position == player.PositionGoalkeeper
	})

	goalkeepers, gkIssues := s.enrichGoalkeepers(ctx, competition, goalkeepers, playerNames, teamNames)
	issues = append(issues, gkIssues...)

	return PlayerTables{
		Players:      players,
		FieldPlayers: fieldPlayers,
		Goalkeepers:  goalkeepers,
	}, issues
}

// enrichGoalkeepers merges the keeper-only fact feeds and applies the keeper
// column order. The name lookups ride along on the xgoals feed; colliding
// columns are discarded on merge so they never shadow the dimension values.
func (s *PlayerService) enrichGoalkeepers(ctx context.Context, competition string, goalkeepers, playerNames, teamNames table.Table) (table.Table, []Issue) {
	var issues []Issue

	gkXGoals, err := s.provider.GoalkeeperXGoals(ctx, competition)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch goalkeeper xgoals",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TableGoalkeepers, Stage: "merge xgoals", Err: err})
	} else {
		if !playerNames.IsEmpty() {
			gkXGoals = gkXGoals.LeftJoin(playerNames, table.JoinSpec{LeftKey: player.IDColumn})
		}
		if !teamNames.IsEmpty() {
			gkXGoals = gkXGoals.LeftJoin(teamNames, table.JoinSpec{LeftKey: player.TeamIDColumn, RightKey: team.IDColumn})
		}
		goalkeepers = goalkeepers.LeftJoin(gkXGoals, table.JoinSpec{LeftKey: player.IDColumn})
	}

	gkGoalsAdded, err := s.provider.GoalkeeperGoalsAdded(ctx, competition)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch goalkeeper goals-added",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TableGoalkeepers, Stage: "merge goals-added", Err: err})
	} else {
		goalkeepers = goalkeepers.LeftJoin(gkGoalsAdded, table.JoinSpec{LeftKey: player.IDColumn})
	}

	if selected, err := goalkeepers.Select(player.GoalkeeperColumns...); err != nil {
		s.logger.WarnContext(ctx, "order goalkeeper columns",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TableGoalkeepers, Stage: "select", Err: err})
	} else {
		goalkeepers = selected
	}

	return goalkeepers, issues
}
