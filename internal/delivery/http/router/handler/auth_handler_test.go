package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "smartcity/internal/delivery/http/middleware"
	"smartcity/internal/delivery/http/validator"
	"smartcity/internal/domain/entity"
	domainerrors "smartcity/internal/domain/errors"
	mockUsecase "smartcity/internal/mocks/usecase"
	"smartcity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the production validator and
// error handler so tests observe the exact wire bodies clients see.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	accountID := uuid.New()
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	uc.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "pw",
		}).
		Return(&usecase.SignupOutput{
			Account: entity.NewAccountView(&entity.Account{
				ID:             accountID,
				Username:       "alice",
				Email:          "alice@example.com",
				CredentialHash: "$2a$10$secret",
				CreatedAt:      createdAt,
			}),
		}, nil)

	rec := postJSON(e, "/api/auth/signup", `{"username":"alice","email":"alice@example.com","password":"pw"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, accountID.String(), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Contains(t, body, "createdAt")

	// The credential hash must never appear in any response, under any name.
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, body, "credentialHash")
	assert.NotContains(t, body, "password")
}

func TestAuthHandler_Signup_UsernameTaken(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, errors.Wrap(domainerrors.ErrUsernameTaken, "signup rejected"))

	rec := postJSON(e, "/api/auth/signup", `{"username":"alice","email":"other@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"username_taken"}`, rec.Body.String())
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, errors.Wrap(domainerrors.ErrEmailTaken, "signup rejected"))

	rec := postJSON(e, "/api/auth/signup", `{"username":"bob","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email_taken"}`, rec.Body.String())
}

func TestAuthHandler_Signup_MissingField(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	rec := postJSON(e, "/api/auth/signup", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation_failed"}`, rec.Body.String())
}

func TestAuthHandler_Signup_MalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/signup", h.Signup)

	rec := postJSON(e, "/api/auth/signup", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation_failed"}`, rec.Body.String())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	accountID := uuid.New()

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Username: "alice",
			Password: "pw",
		}).
		Return(&usecase.LoginOutput{
			Account: entity.NewAccountView(&entity.Account{
				ID:             accountID,
				Username:       "alice",
				Email:          "alice@example.com",
				CredentialHash: "$2a$10$secret",
				CreatedAt:      time.Now(),
			}),
		}, nil)

	rec := postJSON(e, "/api/auth/login", `{"username":"alice","password":"pw"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, accountID.String(), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, rec.Body.String(), "secret")
}

// An unknown username and a wrong password must produce byte-identical responses.
func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")).
		Twice()

	unknownUser := postJSON(e, "/api/auth/login", `{"username":"ghost","password":"pw"}`)
	wrongPassword := postJSON(e, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, `{"error":"invalid_credentials"}`, unknownUser.Body.String())

	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	rec := postJSON(e, "/api/auth/login", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation_failed"}`, rec.Body.String())
}
