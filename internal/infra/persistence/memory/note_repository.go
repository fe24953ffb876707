package memory

import (
	"context"
	"slices"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
)

type noteRepository struct {
	store *Store
}

// NewNoteRepository returns a NoteRepository backed by the store.
func NewNoteRepository(store *Store) repository.NoteRepository {
	return &noteRepository{store: store}
}

func (repo *noteRepository) Create(_ context.Context, note *entity.Note) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mirrors the notes.owner_id foreign key.
	if _, ok := s.users[note.OwnerID]; !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
	}

	s.lastNoteID++
	now := s.now()

	note.ID = s.lastNoteID
	note.CreatedAt = now
	note.UpdatedAt = now

	s.notes[note.ID] = copyNote(note)

	return nil
}

func (repo *noteRepository) FindByID(_ context.Context, id int64) (*entity.Note, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}

	return copyNote(note), nil
}

func (repo *noteRepository) Update(_ context.Context, id int64, fields entity.NoteFields) (*entity.Note, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}

	note.Title = fields.Title
	note.Content = fields.Content
	note.UpdatedAt = s.now()

	return copyNote(note), nil
}

func (repo *noteRepository) Delete(_ context.Context, id int64) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return repository.ErrNoteNotFound
	}
	delete(s.notes, id)

	return nil
}

func (repo *noteRepository) ListByOwner(_ context.Context, ownerID int64) ([]*entity.Note, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]*entity.Note, 0)
	for _, note := range s.notes {
		if note.OwnerID == ownerID {
			notes = append(notes, copyNote(note))
		}
	}

	slices.SortFunc(notes, func(a, b *entity.Note) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return notes, nil
}
