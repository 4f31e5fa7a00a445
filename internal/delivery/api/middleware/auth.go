package middleware

import (
	"log/slog"
	"strings"

	"market/internal/delivery/api/response"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves bearer tokens to principals and enforces roles.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC, logger: params.Logger}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header must carry a Bearer token")
		}

		if err := m.resolve(c, token); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// OptionalAuthenticate resolves the principal when a token is sent and lets anonymous requests through.
// A token that is sent but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		if err := m.resolve(c, token); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context, token string) error {
	ctx := c.Request().Context()

	principal, err := m.authUC.ResolvePrincipal(ctx, token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Bearer token rejected", slog.Any("error", err))

		return err
	}

	deliverycontext.SetPrincipal(c, principal)

	// Usecase logs for this request carry who made it.
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
		slog.String("role", principal.Role.String()),
		slog.String("subject_id", principal.Payload.SubjectID.String()),
	)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

	return nil
}

// RequireRole lets through principals holding one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetPrincipal(c).Is(roles...) {
				return response.Forbidden(c, domainerrors.ErrAccessDenied.ErrorCode(), accessDeniedMessage(roles))
			}

			return next(c)
		}
	}
}

func accessDeniedMessage(roles []entity.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}

	return "Access denied, please log in as " + strings.Join(names, " or ")
}

// GetSubjectID returns the authenticated subject, if any.
func GetSubjectID(c echo.Context) (uuid.UUID, bool) {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return uuid.Nil, false
	}

	return principal.Payload.SubjectID, true
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
