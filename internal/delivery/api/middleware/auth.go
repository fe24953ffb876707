package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "notekeeper/internal/delivery/context"
	"notekeeper/internal/domain/entity"
	domainerrors "notekeeper/internal/domain/errors"
	"notekeeper/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware guards protected routes with bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token and attaches its identity claim to
// the request context. Rejected requests never reach the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrMissingToken
		}

		ctx := c.Request().Context()
		identity, err := m.tokenSvc.Decode(tokenString)
		if err != nil {
			// The reason stays in the log; the caller only learns the token was rejected.
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Bearer token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated
		}

		ctx = deliverycontext.WithIdentity(ctx, *identity)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("userID", identity.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetIdentity returns the identity attached by Authenticate.
func GetIdentity(c echo.Context) (entity.IdentityClaim, bool) {
	return deliverycontext.IdentityFromContext(c.Request().Context())
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || scheme != bearerScheme {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
