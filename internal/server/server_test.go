package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelmates/internal/catalog"
	"reelmates/internal/config"
	"reelmates/internal/models"
	"reelmates/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type catalogStub struct {
	browseFn func(context.Context, string, int, int) (*catalog.Page, error)
}

func (s *catalogStub) Browse(ctx context.Context, name string, year, page int) (*catalog.Page, error) {
	if s.browseFn == nil {
		return &catalog.Page{Page: page, Results: []catalog.MovieSummary{}}, nil
	}
	return s.browseFn(ctx, name, year, page)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		Env:             "test",
		JWTSecret:       "test-secret-not-for-production",
		TokenTTLMinutes: 30,
	}
}

// newTestServer builds a full server over an in-memory SQLite database with
// routes registered on a bare Fiber app.
func newTestServer(t *testing.T, cat service.Catalog) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.Favorite{},
		&models.Friendship{},
	))

	if cat == nil {
		cat = &catalogStub{}
	}

	s, err := NewServerWithDeps(testConfig(), db, nil, cat)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	_ = resp.Body.Close()
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	_ = resp.Body.Close()
	return resp, decoded
}

// signupUser registers an account and returns its token and user id.
func signupUser(t *testing.T, app *fiber.App, username string) (string, uint) {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
		"username": username,
		"password": "password1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "signup failed: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	user, _ := body["user"].(map[string]any)
	require.NotNil(t, user)
	id, _ := user["id"].(float64)
	require.NotZero(t, id)

	return token, uint(id)
}

func TestSignupAndLogin(t *testing.T) {
	_, app := newTestServer(t, nil)

	signupUser(t, app, "alice")

	t.Run("duplicate username", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
			"username": "alice",
			"password": "password1",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, models.ErrCodeConflict, body["code"])
	})

	t.Run("weak password", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", fiber.Map{
			"username": "bob",
			"password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("login success", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "alice",
			"password": "password1",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("login is case-insensitive on username", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "ALICE",
			"password": "password1",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "alice",
			"password": "wrong1234",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown username", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "ghost",
			"password": "password1",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequired(t *testing.T) {
	s, app := newTestServer(t, nil)

	t.Run("missing token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/friends", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/friends", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with wrong secret", func(t *testing.T) {
		other := *s.config
		other.JWTSecret = "some-other-secret-entirely-wrong"
		wrongServer := &Server{config: &other}
		token, err := wrongServer.generateToken(1, "alice")
		require.NoError(t, err)

		resp, _ := doJSON(t, app, http.MethodGet, "/api/friends", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, _ := signupUser(t, app, "alice")
		resp, _ := doJSONList(t, app, http.MethodGet, "/api/friends", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{models.NewNotFoundError("User", 1), http.StatusNotFound},
		{models.NewConflictError("taken"), http.StatusConflict},
		{models.NewValidationError("bad"), http.StatusBadRequest},
		{models.NewUnauthorizedError("nope"), http.StatusUnauthorized},
		{models.NewForbiddenError("no"), http.StatusForbidden},
		{models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, statusForError(tt.err), fmt.Sprintf("%v", tt.err))
	}
}
