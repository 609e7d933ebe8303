package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/asastats/datamart/internal/domain/manager"
	"github.com/asastats/datamart/internal/domain/referee"
	"github.com/asastats/datamart/internal/platform/logging"
	"github.com/asastats/datamart/internal/platform/table"
)

// DatasetService runs the whole enrichment pipeline: dimensions first, then
// the team statistics merge, then player and game enrichment. Fetches are
// sequential and blocking; one failed dimension never blocks the others.
type DatasetService struct {
	provider StatsProvider
	teams    *TeamService
	players  *PlayerService
	games    *GameService
	logger   *logging.Logger
}

func NewDatasetService(provider StatsProvider, logger *logging.Logger) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		provider: provider,
		teams:    NewTeamService(provider, logger),
		players:  NewPlayerService(provider, logger),
		games:    NewGameService(provider, logger),
		logger:   logger,
	}
}

// Build produces the dataset for one competition. It never returns an
// error: failed steps leave their table empty or partial and are reported
// through Dataset.Issues.
func (s *DatasetService) Build(ctx context.Context, competition string) Dataset {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Build")
	defer span.End()

	var ds Dataset

	competition = strings.TrimSpace(competition)
	if competition == "" {
		ds.Issues = append(ds.Issues, Issue{
			Stage: "input",
			Err:   fmt.Errorf("%w: competition is required", ErrInvalidInput),
		})
		return ds
	}
	if s.provider == nil {
		ds.Issues = append(ds.Issues, Issue{
			Stage: "provider",
			Err:   fmt.Errorf("%w: stats provider is not configured", ErrDependencyUnavailable),
		})
		return ds
	}

	ds.Stadiums = s.fetchDimension(ctx, &ds, TableStadium, competition, s.provider.Stadia)
	ds.Managers = s.fetchDimension(ctx, &ds, TableManagers, competition, s.provider.Managers).
		Categorize(manager.CategoricalColumns...)
	ds.Referees = s.fetchDimension(ctx, &ds, TableReferees, competition, s.provider.Referees).
		Categorize(referee.CategoricalColumns...)

	teams, teamIssues := s.teams.Build(ctx, competition)
	ds.Teams = teams
	ds.Issues = append(ds.Issues, teamIssues...)

	playerTables, playerIssues := s.players.Build(ctx, competition, ds.Teams)
	ds.Players = playerTables.Players
	ds.FieldPlayers = playerTables.FieldPlayers
	ds.Goalkeepers = playerTables.Goalkeepers
	ds.Issues = append(ds.Issues, playerIssues...)

	games, gameIssues := s.games.Build(ctx, competition, ds.Teams, ds.Stadiums, ds.Managers, ds.Referees)
	ds.Games = games
	ds.Issues = append(ds.Issues, gameIssues...)

	s.logger.InfoContext(ctx, "dataset built",
		"competition", competition,
		"issues", len(ds.Issues),
		"games", ds.Games.Len(),
		"players", ds.Players.Len(),
		"teams", ds.Teams.Len(),
	)
	return ds
}

func (s *DatasetService) fetchDimension(
	ctx context.Context,
	ds *Dataset,
	name string,
	competition string,
	fetch func(context.Context, string) (table.Table, error),
) table.Table {
	dim, err := fetch(ctx, competition)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch dimension",
			"competition", competition, "table", name, "error", err)
		ds.Issues = append(ds.Issues, Issue{Table: name, Stage: "fetch", Err: err})
		return table.Empty()
	}
	return filterCompetition(dim, competition)
}
