package usecase

import (
	"context"

	"github.com/asastats/datamart/internal/domain/team"
	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/table"
)

// TeamService builds the enriched teams dimension: the base table plus the
// goals-added, xgoals and xpass feeds merged on team_id.
type TeamService struct {
	provider StatsProvider
	logger   *logging.Logger
}

func NewTeamService(provider StatsProvider, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{provider: provider, logger: logger}
}

func (s *TeamService) Build(ctx context.Context, competition string) (table.Table, []Issue) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Build")
	defer span.End()

	var issues []Issue

	teams, err := s.provider.Teams(ctx, competition)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch teams dimension",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TableTeams, Stage: "fetch", Err: err})
		return table.Empty(), issues
	}
	teams = filterCompetition(teams, competition)

	merges := []struct {
		stage string
		fetch func(context.Context, string) (table.Table, error)
	}{
		{"merge goals-added", s.provider.TeamGoalsAdded},
		{"merge xgoals", s.provider.TeamXGoals},
		{"merge xpass", s.provider.TeamXPass},
	}
	for _, m := range merges {
		stats, err := m.fetch(ctx, competition)
		if err != nil {
			s.logger.ErrorContext(ctx, "fetch team statistics",
				"competition", competition, "stage", m.stage, "error", err)
			issues = append(issues, Issue{Table: TableTeams, Stage: m.stage, Err: err})
			continue
		}
		teams = teams.LeftJoin(stats, table.JoinSpec{LeftKey: team.IDColumn})
	}

	for col, def := range team.DefaultedColumns {
		teams = teams.EnsureColumn(col, def)
	}
	teams = teams.Categorize(team.CategoricalColumns...)

	selected, err := teams.Select(team.OutputColumns...)
	if err != nil {
		s.logger.WarnContext(ctx, "order team columns",
			"competition", competition, "error", err)
		issues = append(issues, Issue{Table: TableTeams, Stage: "select", Err: err})
		return teams, issues
	}
	return selected, issues
}
