package server

import (
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Valid signup",
			body: map[string]any{
				"email": "new@example.com", "name": "New User",
				"password": testPassword, "location": "Portland, OR",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing fields",
			body:           map[string]any{"email": "new@example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email, name, and password are required",
		},
		{
			name: "Weak password",
			body: map[string]any{
				"email": "weak@example.com", "name": "Weak User", "password": "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid email",
			body: map[string]any{
				"email": "not-an-email", "name": "Bad Email", "password": testPassword,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid name",
			body: map[string]any{
				"email": "x@example.com", "name": "@", "password": testPassword,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, app := newTestServer(t)

			resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				assert.NotEmpty(t, body["token"])
				user, ok := body["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "user", user["role"])
				assert.Equal(t, true, user["is_public"])
				assert.Nil(t, user["password"], "password hash must never be serialized")
				assert.NotNil(t, s.store.Users.GetByEmail(tt.body["email"].(string)))
			} else if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestSignup_DuplicateEmailDoesNotMutate(t *testing.T) {
	s, app := newTestServer(t)
	existing, _ := createUser(t, s, "taken@example.com", "First User")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email": "taken@example.com", "name": "Impostor", "password": testPassword,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User already exists", body["error"])

	// The original record is untouched and no second account was created.
	assert.Len(t, s.store.Users.ListAll(), 1)
	stored := s.store.Users.GetByEmail("taken@example.com")
	require.NotNil(t, stored)
	assert.Equal(t, existing.Name, stored.Name)
}

func TestLogin(t *testing.T) {
	s, app := newTestServer(t)
	createUser(t, s, "member@example.com", "Member")
	createUser(t, s, "banned@example.com", "Banned Member", func(u *models.User) {
		u.IsBanned = true
	})

	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"Valid credentials", "member@example.com", testPassword, http.StatusOK},
		{"Wrong password", "member@example.com", "WrongPass12!@", http.StatusUnauthorized},
		{"Unknown email", "nobody@example.com", testPassword, http.StatusUnauthorized},
		{"Banned account", "banned@example.com", testPassword, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
				"email": tt.email, "password": tt.password,
			})
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus == http.StatusOK {
				assert.NotEmpty(t, body["token"])
			} else {
				assert.Equal(t, "Invalid credentials or account is banned", body["error"])
			}
		})
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	s, app, _ := newTestServerWithRedis(t)
	_, token := createUser(t, s, "member@example.com", "Member")

	// Token works before logout.
	resp, _ := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out successfully", body["message"])

	// The jti is blacklisted until expiry, so the same token is now rejected.
	resp, body = doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token has been revoked", body["error"])
}

func TestLogout_WithoutToken(t *testing.T) {
	_, app := newTestServer(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
