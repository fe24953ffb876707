package usecase

import (
	"context"

	"notekeeper/internal/domain/entity"
)

// NoteInput carries the client-supplied fields of a note. The owner is never
// taken from client input.
type NoteInput struct {
	Title   string
	Content string
}

// NoteUsecase defines the note operations available to an authenticated caller.
// Every operation on an existing note is preceded by an ownership check.
type NoteUsecase interface {
	List(ctx context.Context, identity entity.IdentityClaim) ([]*entity.Note, error)
	Create(ctx context.Context, identity entity.IdentityClaim, input NoteInput) (*entity.Note, error)
	Get(ctx context.Context, identity entity.IdentityClaim, noteID int64) (*entity.Note, error)
	Update(ctx context.Context, identity entity.IdentityClaim, noteID int64, input NoteInput) (*entity.Note, error)
	Delete(ctx context.Context, identity entity.IdentityClaim, noteID int64) error
}
