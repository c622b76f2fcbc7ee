package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret-key-12345678901234567890123456789012"
	testPassword = "SecurePass12!@"
)

// newTestServer builds a server on a fresh store without Redis.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	return newServerWith(t, nil)
}

// newTestServerWithRedis builds a server backed by miniredis for the
// blacklist and cache paths.
func newTestServerWithRedis(t *testing.T) (*Server, *fiber.App, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	s, app := newServerWith(t, rdb)
	return s, app, mr
}

func newServerWith(t *testing.T, rdb *redis.Client) (*Server, *fiber.App) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	cfg := &config.Config{JWTSecret: testSecret, Port: "0", Env: "test"}
	s, err := NewServerWithDeps(cfg, store.New(), rdb)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// createUser inserts a user directly into the store and returns it with a
// valid token. MinCost keeps the bcrypt work factor out of test runtime.
func createUser(t *testing.T, s *Server, email, name string, mutate ...func(*models.User)) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
		IsPublic: true,
		Role:     models.RoleUser,
	}
	for _, m := range mutate {
		m(&user)
	}
	user = s.store.Users.Create(user)

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func createAdmin(t *testing.T, s *Server) (models.User, string) {
	t.Helper()
	return createUser(t, s, "admin@skillswap.com", "Platform Admin", func(u *models.User) {
		u.Role = models.RoleAdmin
	})
}

// doJSON performs a request with an optional bearer token and JSON body and
// decodes the response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	} else if len(raw) > 0 {
		decoded["_raw"] = string(raw)
	}
	return resp, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var list []map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &list))
	}
	return resp, list
}
