package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/delivery/http/response"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// AuthMiddlewareParams holds the dependencies of AuthMiddleware.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// AuthMiddleware resolves the bearer token of a request to a stored user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate rejects the request with 401 {"message":"Not authorized"} unless it carries
// a valid bearer token whose user still exists. The user is then available through
// deliverycontext.GetUser and deliverycontext.GetUserFromContext.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c)
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			logger.Debug("Rejected bearer token", slog.Any("error", err))

			return response.Unauthorized(c)
		}

		user, err := m.userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			logger.Debug("Bearer token user not resolved",
				slog.String("user_id", claims.UserID.String()),
				slog.Any("error", err),
			)

			return response.Unauthorized(c)
		}

		deliverycontext.SetUser(c, user)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUser(ctx, user)))

		return next(c)
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header value.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
