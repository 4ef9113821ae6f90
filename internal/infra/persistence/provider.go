// Package persistence selects the region store for the running process.
package persistence

import (
	"log/slog"

	"geoo/config"
	"geoo/internal/domain/repository"
	"geoo/internal/errors"
	"geoo/internal/infra/persistence/memory"
	"geoo/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRegionRepository uses PostgreSQL when it is configured and memory otherwise.
func NewRegionRepository(params Params) (repository.RegionRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Warn("Postgres is not configured, regions are kept in memory")

		return memory.NewRegionRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return postgres.NewRegionRepository(db), nil
}
