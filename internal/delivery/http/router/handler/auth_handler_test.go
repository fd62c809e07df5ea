package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitfamily/internal/delivery/http/validator"
	domainerrors "fitfamily/internal/domain/errors"
	mockusecase "fitfamily/internal/mocks/usecase"
	"fitfamily/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	authUsecase := mockusecase.NewMockAuthUsecase(t)
	handler := &AuthHandler{authUsecase: authUsecase}

	userID := uuid.New()
	authUsecase.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "John Doe",
			Email:    "john@example.com",
			Password: "secret123",
		}).
		Return(&usecase.RegisterOutput{
			ID:    userID,
			Name:  "John Doe",
			Email: "john@example.com",
			Role:  "MEMBER",
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"name":"John Doe","email":"john@example.com","password":"secret123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID, body.ID)
	assert.Equal(t, "john@example.com", body.Email)
	assert.Equal(t, "MEMBER", body.Role)
	assert.Equal(t, "User registered successfully", body.Message)
}

func TestRegister_ValidationFailureSkipsUsecase(t *testing.T) {
	authUsecase := mockusecase.NewMockAuthUsecase(t)
	handler := &AuthHandler{authUsecase: authUsecase}

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"name":"John Doe","email":"not-an-email","password":"123"}`)

	err := handler.Register(c)
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Contains(t, validationErrors, "email")
	assert.Contains(t, validationErrors, "password")
}

func TestLogin_Success(t *testing.T) {
	authUsecase := mockusecase.NewMockAuthUsecase(t)
	handler := &AuthHandler{authUsecase: authUsecase}

	authUsecase.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Email:    "john@example.com",
			Password: "secret123",
		}).
		Return(&usecase.LoginOutput{
			Token: "signed-token",
			Email: "john@example.com",
			Role:  "MEMBER",
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"secret123"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "Login successful", body.Message)
}

func TestLogin_InvalidCredentialsPropagates(t *testing.T) {
	authUsecase := mockusecase.NewMockAuthUsecase(t)
	handler := &AuthHandler{authUsecase: authUsecase}

	authUsecase.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"john@example.com","password":"wrong"}`)

	err := handler.Login(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
