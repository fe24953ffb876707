package impl

import (
	"context"
	"testing"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/infra/auth"
	mockRepo "notekeeper/internal/mocks/repository"
	mockSvc "notekeeper/internal/mocks/service"
	"notekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noteServiceFixtures struct {
	service  usecase.NoteUsecase
	noteRepo *mockRepo.MockNoteRepository
}

// createTestNoteService wires the real owner authorizer so ownership rules are exercised end to end.
func createTestNoteService(t *testing.T) noteServiceFixtures {
	noteRepo := mockRepo.NewMockNoteRepository(t)

	return noteServiceFixtures{
		service: NewNoteService(NoteServiceParams{
			NoteRepo:   noteRepo,
			Authorizer: auth.NewOwnerAuthorizer(),
			Logger:     newDiscardLogger(),
		}),
		noteRepo: noteRepo,
	}
}

var (
	alice = entity.IdentityClaim{UserID: 1}
	bob   = entity.IdentityClaim{UserID: 2}
)

func aliceNote() *entity.Note {
	return &entity.Note{ID: 10, Title: "t", Content: "c", OwnerID: alice.UserID}
}

func TestNoteService_Create_StampsOwner(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) { note.ID = 10 }).
		Return(nil)

	note, err := fx.service.Create(ctx, bob, usecase.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), note.ID)
	assert.Equal(t, bob.UserID, note.OwnerID)
}

func TestNoteService_Create_RequiresFields(t *testing.T) {
	fx := createTestNoteService(t)

	for _, input := range []usecase.NoteInput{{Title: "t"}, {Content: "c"}, {Title: " ", Content: "c"}} {
		_, err := fx.service.Create(context.Background(), alice, input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestNoteService_List(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().ListByOwner(ctx, alice.UserID).Return([]*entity.Note{aliceNote()}, nil)

	notes, err := fx.service.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestNoteService_Get(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil)

	note, err := fx.service.Get(ctx, alice, 10)
	require.NoError(t, err)
	assert.Equal(t, "t", note.Title)
}

func TestNoteService_ForeignAndMissingAreIndistinguishable(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil)
	fx.noteRepo.EXPECT().FindByID(ctx, int64(11)).Return(nil, repository.ErrNoteNotFound)

	_, foreignErr := fx.service.Get(ctx, bob, 10)
	_, missingErr := fx.service.Get(ctx, bob, 11)

	assert.True(t, errors.Is(foreignErr, domainerrors.ErrNoteNotFound))
	assert.True(t, errors.Is(missingErr, domainerrors.ErrNoteNotFound))
	assert.Equal(t, missingErr.Error(), foreignErr.Error())
}

func TestNoteService_Delete_ForeignNoteNotFound(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil)

	err := fx.service.Delete(ctx, bob, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
	fx.noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNoteService_Delete_Owner(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil)
	fx.noteRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, alice, 10))
}

func TestNoteService_Delete_VanishedBetweenCheckAndWrite(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil)
	fx.noteRepo.EXPECT().Delete(ctx, int64(10)).Return(repository.ErrNoteNotFound)

	err := fx.service.Delete(ctx, alice, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_Update_Owner(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	fields := entity.NoteFields{Title: "new", Content: "body"}

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil)
	fx.noteRepo.EXPECT().Update(ctx, int64(10), fields).
		Return(&entity.Note{ID: 10, Title: "new", Content: "body", OwnerID: alice.UserID}, nil)

	note, err := fx.service.Update(ctx, alice, 10, usecase.NoteInput{Title: "new", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", note.Title)
	assert.Equal(t, alice.UserID, note.OwnerID)
}

func TestNoteService_Update_OwnershipBeforeValidation(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(aliceNote(), nil).Twice()

	// Foreign caller with an empty body still sees not-found.
	_, err := fx.service.Update(ctx, bob, 10, usecase.NoteInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))

	// Owner with an empty body gets the validation error.
	_, err = fx.service.Update(ctx, alice, 10, usecase.NoteInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNoteService_StoreFailureOnLookup(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to find note by ID")

	fx.noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(nil, storeErr)

	_, err := fx.service.Get(ctx, alice, 10)
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_AuthorizerOperations(t *testing.T) {
	ctx := context.Background()
	noteRepo := mockRepo.NewMockNoteRepository(t)
	authorizer := mockSvc.NewMockNoteAuthorizer(t)
	srv := NewNoteService(NoteServiceParams{
		NoteRepo:   noteRepo,
		Authorizer: authorizer,
		Logger:     newDiscardLogger(),
	})

	// Create never consults the authorizer.
	noteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Note")).Return(nil).Once()
	_, err := srv.Create(ctx, alice, usecase.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	authorizer.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything)

	note := aliceNote()
	noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(note, nil).Times(3)

	authorizer.EXPECT().Authorize(alice, note, entity.NoteOperationRead).Return(nil).Once()
	_, err = srv.Get(ctx, alice, 10)
	require.NoError(t, err)

	fields := entity.NoteFields{Title: "new", Content: "body"}
	authorizer.EXPECT().Authorize(alice, note, entity.NoteOperationUpdate).Return(nil).Once()
	noteRepo.EXPECT().Update(ctx, int64(10), fields).Return(note, nil).Once()
	_, err = srv.Update(ctx, alice, 10, usecase.NoteInput{Title: "new", Content: "body"})
	require.NoError(t, err)

	authorizer.EXPECT().Authorize(alice, note, entity.NoteOperationDelete).Return(nil).Once()
	noteRepo.EXPECT().Delete(ctx, int64(10)).Return(nil).Once()
	require.NoError(t, srv.Delete(ctx, alice, 10))
}

func TestNoteService_AuthorizerDenialStopsStoreWrite(t *testing.T) {
	ctx := context.Background()
	noteRepo := mockRepo.NewMockNoteRepository(t)
	authorizer := mockSvc.NewMockNoteAuthorizer(t)
	srv := NewNoteService(NoteServiceParams{
		NoteRepo:   noteRepo,
		Authorizer: authorizer,
		Logger:     newDiscardLogger(),
	})

	note := aliceNote()
	noteRepo.EXPECT().FindByID(ctx, int64(10)).Return(note, nil).Once()
	authorizer.EXPECT().Authorize(bob, note, entity.NoteOperationDelete).
		Return(domainerrors.ErrNoteNotFound.WrapMessage("note not found for this user")).Once()

	err := srv.Delete(ctx, bob, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
	noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
