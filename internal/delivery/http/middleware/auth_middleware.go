// Package middleware contains the HTTP middlewares of the delivery layer.
package middleware

import (
	"strings"

	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/domain/service"
	"fitfamily/internal/errors"

	"github.com/labstack/echo/v4"
)

// userContextKey is the echo context key carrying the authenticated user.
const userContextKey = "currentUser"

// AuthMiddleware validates bearer tokens and resolves the caller once per
// request. Handlers receive the full user entity and pass it explicitly into
// every usecase call; nothing downstream reads identity from ambient state.
type AuthMiddleware struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// Authenticate rejects the request with 403 when the token is missing,
// malformed, expired, or its subject no longer exists in the store.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenService.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// Token possession does not guarantee the account still exists.
		user, err := m.userRepo.FindByEmail(c.Request().Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidToken
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user resolved by Authenticate.
// It is nil on routes that skip the middleware.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)

	return user
}
