package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"notekeeper/internal/delivery/api/middleware"
	"notekeeper/internal/delivery/api/response"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler serves the note endpoints. Every route sits behind the auth middleware.
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest represents the request body for updating a note.
// It is validated by the usecase after the ownership check.
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListNotes returns the caller's notes
func (h *NoteHandler) ListNotes(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	notes, err := h.noteUC.List(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notes)
}

// CreateNote creates a note owned by the caller
func (h *NoteHandler) CreateNote(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("invalid note input"))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	note, err := h.noteUC.Create(c.Request().Context(), identity, usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, note)
}

// GetNote returns one of the caller's notes
func (h *NoteHandler) GetNote(c echo.Context) error {
	identity, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	note, err := h.noteUC.Get(c.Request().Context(), identity, noteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, note)
}

// UpdateNote replaces the title and content of one of the caller's notes
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	identity, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("invalid note input"))
	}

	note, err := h.noteUC.Update(c.Request().Context(), identity, noteID, usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, note)
}

// DeleteNote removes one of the caller's notes
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	identity, noteID, err := noteTarget(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.noteUC.Delete(c.Request().Context(), identity, noteID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "note successfully deleted"})
}

// noteTarget reads the caller's identity and the :noteId path parameter.
func noteTarget(c echo.Context) (entity.IdentityClaim, int64, error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return entity.IdentityClaim{}, 0, domainerrors.ErrUnauthenticated
	}

	noteID, err := strconv.ParseInt(c.Param("noteId"), 10, 64)
	if err != nil || noteID <= 0 {
		return entity.IdentityClaim{}, 0, domainerrors.ErrValidationFailed.WrapMessage("invalid note id")
	}

	return identity, noteID, nil
}
