package service

import "notekeeper/internal/domain/entity"

// NoteAuthorizer decides whether an authenticated identity may perform an
// operation on a note. A nil note means the note does not exist.
//
// Missing notes and notes owned by someone else both fail with
// errors.ErrNoteNotFound, so callers cannot learn which ids exist.
type NoteAuthorizer interface {
	Authorize(identity entity.IdentityClaim, note *entity.Note, op entity.NoteOperation) error
}
