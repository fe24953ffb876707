package persistence

import (
	"context"
	"log/slog"
	"testing"

	"notekeeper/config"
	"notekeeper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory

	repos, err := NewRepositories(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	ctx := context.Background()
	user := &entity.User{Name: "A", Email: "a@x.com"}
	require.NoError(t, repos.UserRepo.Create(ctx, user))

	// Both repositories share one store.
	note := &entity.Note{Title: "t", Content: "c", OwnerID: user.ID}
	assert.NoError(t, repos.NoteRepo.Create(ctx, note))
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "cassandra"

	_, err := NewRepositories(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.DiscardHandler),
	})
	assert.ErrorContains(t, err, "unsupported storage driver")
}
