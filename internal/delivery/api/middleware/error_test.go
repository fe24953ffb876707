package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "notekeeper/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{
			name:        "validation failure carries details",
			err:         domainerrors.ErrValidationFailed.WrapMessage("title is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "unauthenticated",
			err:        domainerrors.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "note not found hides the reason",
			err:        domainerrors.ErrNoteNotFound.WrapMessage("owned by another user"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOTE_NOT_FOUND",
		},
		{
			name:       "database failure",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "insert note"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleHTTPError_InternalDetailsStayInLog(t *testing.T) {
	_, body := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("password=secret host=db"), "find user"))

	assert.NotContains(t, body.Error.Message, "secret")
}
