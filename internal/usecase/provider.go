package usecase

import (
	"context"

	"github.com/asastats/datamart/internal/platform/table"
)

// StatsProvider is the upstream analytics API surface the pipeline consumes.
// Dimension methods return full entity tables; the rest are per-competition
// fact feeds. Every method performs a blocking fetch.
type StatsProvider interface {
	Players(ctx context.Context, competition string) (table.Table, error)
	Teams(ctx context.Context, competition string) (table.Table, error)
	Stadia(ctx context.Context, competition string) (table.Table, error)
	Managers(ctx context.Context, competition string) (table.Table, error)
	Referees(ctx context.Context, competition string) (table.Table, error)

	TeamGoalsAdded(ctx context.Context, competition string) (table.Table, error)
	TeamXGoals(ctx context.Context, competition string) (table.Table, error)
	TeamXPass(ctx context.Context, competition string) (table.Table, error)

	PlayerGoalsAdded(ctx context.Context, competition string) (table.Table, error)
	PlayerXGoals(ctx context.Context, competition string) (table.Table, error)
	PlayerXPass(ctx context.Context, competition string) (table.Table, error)

	GoalkeeperXGoals(ctx context.Context, competition string) (table.Table, error)
	GoalkeeperGoalsAdded(ctx context.Context, competition string) (table.Table, error)

	Games(ctx context.Context, competition string) (table.Table, error)
	GameXGoals(ctx context.Context, competition string) (table.Table, error)
}
