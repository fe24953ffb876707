package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/domain/service"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	noteRepo   repository.NoteRepository
	authorizer service.NoteAuthorizer
	logger     *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo   repository.NoteRepository
	Authorizer service.NoteAuthorizer
	Logger     *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo:   params.NoteRepo,
		authorizer: params.Authorizer,
		logger:     params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the caller's notes.
func (srv *noteService) List(ctx context.Context, identity entity.IdentityClaim) ([]*entity.Note, error) {
	notes, err := srv.noteRepo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

// Create stamps the new note with the caller's id.
func (srv *noteService) Create(ctx context.Context, identity entity.IdentityClaim, input usecase.NoteInput) (*entity.Note, error) {
	if err := validateNoteInput(input); err != nil {
		return nil, err
	}

	note := &entity.Note{
		Title:   input.Title,
		Content: input.Content,
		OwnerID: identity.UserID,
	}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.Int64("noteID", note.ID), slog.Int64("userID", identity.UserID))

	return note, nil
}

// Get returns one of the caller's notes.
func (srv *noteService) Get(ctx context.Context, identity entity.IdentityClaim, noteID int64) (*entity.Note, error) {
	return srv.authorizedNote(ctx, identity, noteID, entity.NoteOperationRead)
}

// Update replaces title and content. Ownership is checked before the input,
// so a foreign note reports not-found even for an invalid body.
func (srv *noteService) Update(ctx context.Context, identity entity.IdentityClaim, noteID int64, input usecase.NoteInput) (*entity.Note, error) {
	if _, err := srv.authorizedNote(ctx, identity, noteID, entity.NoteOperationUpdate); err != nil {
		return nil, err
	}

	if err := validateNoteInput(input); err != nil {
		return nil, err
	}

	updated, err := srv.noteRepo.Update(ctx, noteID, entity.NoteFields{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		return nil, srv.storeError(err, "failed to update note")
	}

	return updated, nil
}

// Delete removes one of the caller's notes.
func (srv *noteService) Delete(ctx context.Context, identity entity.IdentityClaim, noteID int64) error {
	if _, err := srv.authorizedNote(ctx, identity, noteID, entity.NoteOperationDelete); err != nil {
		return err
	}

	if err := srv.noteRepo.Delete(ctx, noteID); err != nil {
		return srv.storeError(err, "failed to delete note")
	}

	srv.log(ctx).Debug("Note deleted", slog.Int64("noteID", noteID), slog.Int64("userID", identity.UserID))

	return nil
}

// authorizedNote loads the note and runs the ownership check for op.
// A missing note reaches the authorizer as nil.
func (srv *noteService) authorizedNote(ctx context.Context, identity entity.IdentityClaim, noteID int64, op entity.NoteOperation) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, noteID)
	if err != nil && !errors.Is(err, repository.ErrNoteNotFound) {
		return nil, errors.Wrap(err, "failed to find note")
	}

	if err := srv.authorizer.Authorize(identity, note, op); err != nil {
		srv.log(ctx).Debug("Note access denied",
			slog.Int64("noteID", noteID),
			slog.Int64("userID", identity.UserID),
			slog.String("operation", op.String()),
		)

		return nil, err
	}

	return note, nil
}

// storeError maps a row that vanished between the check and the write to not-found.
func (srv *noteService) storeError(err error, msg string) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return domainerrors.ErrNoteNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}

func validateNoteInput(input usecase.NoteInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title and content fields are required")
	}

	return nil
}
