package auth

import (
	"testing"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOwnerAuthorizer_Authorize(t *testing.T) {
	authorizer := NewOwnerAuthorizer()
	owner := entity.IdentityClaim{UserID: 1}
	stranger := entity.IdentityClaim{UserID: 2}
	note := &entity.Note{ID: 10, Title: "t", Content: "c", OwnerID: 1}

	ops := []entity.NoteOperation{entity.NoteOperationRead, entity.NoteOperationUpdate, entity.NoteOperationDelete}

	for _, op := range ops {
		t.Run(op.String(), func(t *testing.T) {
			assert.NoError(t, authorizer.Authorize(owner, note, op))

			foreignErr := authorizer.Authorize(stranger, note, op)
			missingErr := authorizer.Authorize(owner, nil, op)

			assert.True(t, errors.Is(foreignErr, domainerrors.ErrNoteNotFound))
			assert.True(t, errors.Is(missingErr, domainerrors.ErrNoteNotFound))
			// Indistinguishable to the caller.
			assert.Equal(t, missingErr.Error(), foreignErr.Error())
		})
	}
}

func TestOwnerAuthorizer_UnknownOperation(t *testing.T) {
	authorizer := NewOwnerAuthorizer()
	note := &entity.Note{ID: 10, OwnerID: 1}

	err := authorizer.Authorize(entity.IdentityClaim{UserID: 1}, note, entity.NoteOperation("share"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
