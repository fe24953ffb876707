package postgres

import (
	"context"

	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/repository"
	"notekeeper/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the domain.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required note information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindByID retrieves a note by its unique ID from the primary, so a note is
// visible to its owner right after creation or update.
func (repo *noteRepository) FindByID(ctx context.Context, id int64) (*entity.Note, error) {
	var noteM model.NoteModel
	if err := onPrimary(ctx, repo.db).Where("id = ?", id).First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find note by ID")
	}

	return toNoteDomain(&noteM), nil
}

// Update replaces the title and content of a note and returns the stored row.
// The owner column is never written.
func (repo *noteRepository) Update(ctx context.Context, id int64, fields entity.NoteFields) (*entity.Note, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":   fields.Title,
			"content": fields.Content,
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}

	// If no rows were affected, it means the note was not found.
	if result.RowsAffected == 0 {
		return nil, repository.ErrNoteNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a note by its ID.
func (repo *noteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// ListByOwner returns every note of the owner, oldest first.
func (repo *noteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Note, error) {
	var noteModels []*model.NoteModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&noteModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notes by owner")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, nil
}

// --- Mapper Functions ---

func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
