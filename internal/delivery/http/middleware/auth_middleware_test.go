package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/domain/service"
	mockrepository "fitfamily/internal/mocks/repository"
	mockservice "fitfamily/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/families/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_Success(t *testing.T) {
	tokenService := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	user := &entity.User{
		ID:    uuid.New(),
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  entity.RoleMember,
	}
	claims := &service.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.Email,
		},
	}

	tokenService.EXPECT().Validate("valid-token").Return(claims, nil)
	userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)

	m := NewAuthMiddleware(tokenService, userRepo)
	c := newAuthTestContext(t, "Bearer valid-token")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, user, CurrentUser(c))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenService := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	m := NewAuthMiddleware(tokenService, userRepo)
	c := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, CurrentUser(c))
}

func TestAuthenticate_NotBearerScheme(t *testing.T) {
	tokenService := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	m := NewAuthMiddleware(tokenService, userRepo)
	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenService := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	tokenService.EXPECT().Validate("garbage").Return(nil, jwt.ErrTokenMalformed)

	m := NewAuthMiddleware(tokenService, userRepo)
	c := newAuthTestContext(t, "Bearer garbage")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthenticate_SubjectNoLongerExists(t *testing.T) {
	tokenService := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)

	claims := &service.Claims{
		UserID: uuid.New(),
		Role:   entity.RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "gone@example.com",
		},
	}

	tokenService.EXPECT().Validate("stale-token").Return(claims, nil)
	userRepo.EXPECT().FindByEmail(mock.Anything, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	m := NewAuthMiddleware(tokenService, userRepo)
	c := newAuthTestContext(t, "Bearer stale-token")

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
