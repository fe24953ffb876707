package handler

import (
	"log/slog"
	"net/http"

	"notekeeper/internal/delivery/api/response"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the public signup and signin endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest represents the request body for signing in
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse is returned after a successful signup
type SignupResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// SigninResponse is returned after a successful signin
type SigninResponse struct {
	Token string `json:"token"`
}

// Signup handles account creation
func (h *AccountHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("invalid signup input"))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Signup(c.Request().Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SignupResponse{
		User:  output.User,
		Token: output.Token,
	})
}

// Signin handles credential checks and token issuance
func (h *AccountHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("invalid signin input"))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Signin(c.Request().Context(), usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SigninResponse{Token: output.Token})
}
