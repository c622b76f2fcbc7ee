package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"skillswap/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestServer_AuthRequired(t *testing.T) {
	s, app := newTestServer(t)
	member, _ := createUser(t, s, "member@example.com", "Member")
	banned, _ := createUser(t, s, "banned@example.com", "Banned", func(u *models.User) {
		u.IsBanned = true
	})

	generateToken := func(userID uint, issuer, audience string, exp time.Duration) string {
		claims := jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(userID), 10),
			"iss": issuer,
			"aud": audience,
			"exp": time.Now().Add(exp).Unix(),
			"jti": "test-jti-valid-length",
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		str, _ := token.SignedString([]byte(testSecret))
		return str
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + generateToken(member.ID, tokenIssuer, tokenAudience, time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + generateToken(member.ID, tokenIssuer, tokenAudience, -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Issuer",
			authHeader:     "Bearer " + generateToken(member.ID, "wrong-issuer", tokenAudience, time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid Audience",
			authHeader:     "Bearer " + generateToken(member.ID, tokenIssuer, "wrong-audience", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed Bearer Format",
			authHeader:     "BearerTokenOnly",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Banned User",
			authHeader:     "Bearer " + generateToken(banned.ID, tokenIssuer, tokenAudience, time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Deleted User",
			authHeader:     "Bearer " + generateToken(9999, tokenIssuer, tokenAudience, time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func TestServer_AdminRequired(t *testing.T) {
	s, app := newTestServer(t)
	_, memberToken := createUser(t, s, "member@example.com", "Member")
	_, adminToken := createAdmin(t, s)

	t.Run("Member is rejected", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/admin/users", memberToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Admin access required", body["error"])
	})

	t.Run("Admin is allowed", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/admin/users", adminToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Anonymous is rejected before role check", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/admin/users", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
