package repository

import (
	"context"

	"notekeeper/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoteNotFound is returned when a note is not found.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the interface for note persistence.
// It performs no authorization; callers check ownership first.
type NoteRepository interface {
	// Create persists a new note and fills in its generated ID and timestamps.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Note, error)

	// Update replaces the mutable fields of a note and returns the stored result.
	Update(ctx context.Context, id int64, fields entity.NoteFields) (*entity.Note, error)

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id int64) error

	// ListByOwner retrieves all notes owned by a user, oldest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Note, error)
}
