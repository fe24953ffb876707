// Package persistence selects the repository backend named by the configuration.
package persistence

import (
	"log/slog"

	"notekeeper/config"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/infra/persistence/memory"
	"notekeeper/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of stores handed to the usecases.
type Repositories struct {
	fx.Out

	UserRepo repository.UserRepository
	NoteRepo repository.NoteRepository
}

// Module provides the configured repositories.
var Module = fx.Options(
	fx.Provide(NewRepositories),
)

// NewRepositories builds the repositories for cfg.Storage.Driver.
func NewRepositories(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			UserRepo: memory.NewUserRepository(store),
			NoteRepo: memory.NewNoteRepository(store),
		}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			UserRepo: postgres.NewUserRepository(db),
			NoteRepo: postgres.NewNoteRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", params.Config.Storage.Driver)
	}
}
