package auth

import (
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/service"
)

// ownerAuthorizer grants every operation on a note to its owner and nothing to anyone else.
type ownerAuthorizer struct{}

// NewOwnerAuthorizer returns the owner-only NoteAuthorizer.
func NewOwnerAuthorizer() service.NoteAuthorizer {
	return ownerAuthorizer{}
}

func (ownerAuthorizer) Authorize(identity entity.IdentityClaim, note *entity.Note, op entity.NoteOperation) error {
	if !op.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown note operation")
	}

	// Same error for absent and foreign notes.
	if !note.OwnedBy(identity.UserID) {
		return domainerrors.ErrNoteNotFound.WrapMessage("note not found for this user")
	}

	return nil
}
