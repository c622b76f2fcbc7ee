package server

import (
	"fmt"
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addSkill(s *Server, userID uint, name string, skillType models.SkillType, approved bool) models.Skill {
	return s.store.Skills.Create(models.Skill{
		UserID: userID, Name: name, Type: skillType, IsApproved: approved,
	})
}

func TestGetUsers_Browse(t *testing.T) {
	s, app := newTestServer(t)
	viewer, token := createUser(t, s, "viewer@example.com", "Viewer")

	john, _ := createUser(t, s, "john@example.com", "John Doe")
	addSkill(s, john.ID, "React Development", models.SkillOffered, true)

	private, _ := createUser(t, s, "private@example.com", "Private Person", func(u *models.User) {
		u.IsPublic = false
	})
	addSkill(s, private.ID, "React Development", models.SkillOffered, true)

	banned, _ := createUser(t, s, "banned@example.com", "Banned Person", func(u *models.User) {
		u.IsBanned = true
	})
	addSkill(s, banned.ID, "React Development", models.SkillOffered, true)

	t.Run("Lists only public non-banned users", func(t *testing.T) {
		resp, list := doJSONList(t, app, http.MethodGet, "/api/users", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		emails := map[string]bool{}
		for _, u := range list {
			emails[u["email"].(string)] = true
		}
		assert.True(t, emails[viewer.Email])
		assert.True(t, emails[john.Email])
		assert.False(t, emails[private.Email])
		assert.False(t, emails[banned.Email])
	})

	t.Run("Skill filter matches substring case-insensitively", func(t *testing.T) {
		resp, list := doJSONList(t, app, http.MethodGet, "/api/users?skill=react", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, list, 1)
		assert.Equal(t, john.Email, list[0]["email"])
	})

	t.Run("Skill filter with no matches is empty", func(t *testing.T) {
		resp, list := doJSONList(t, app, http.MethodGet, "/api/users?skill=juggling", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, list)
	})

	t.Run("Unapproved skills do not match the filter", func(t *testing.T) {
		pendingOwner, _ := createUser(t, s, "pending@example.com", "Pending Owner")
		addSkill(s, pendingOwner.ID, "Juggling", models.SkillOffered, false)

		resp, list := doJSONList(t, app, http.MethodGet, "/api/users?skill=juggling", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, list)
	})
}

func TestGetUsers_CachedListing(t *testing.T) {
	s, app, _ := newTestServerWithRedis(t)
	_, token := createUser(t, s, "viewer@example.com", "Viewer")

	resp, first := doJSONList(t, app, http.MethodGet, "/api/users", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, first, 1)

	// A user added behind the cache's back stays invisible until the entry
	// expires or is invalidated.
	createUser(t, s, "late@example.com", "Late Arrival")
	_, second := doJSONList(t, app, http.MethodGet, "/api/users", token)
	assert.Len(t, second, 1)
}

func TestGetMyProfile(t *testing.T) {
	s, app := newTestServer(t)
	user, token := createUser(t, s, "me@example.com", "It Me")

	resp, body := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(user.ID), body["id"])
	assert.Equal(t, "me@example.com", body["email"])
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("Partial merge leaves omitted fields alone", func(t *testing.T) {
		s, app := newTestServer(t)
		_, token := createUser(t, s, "me@example.com", "Old Name", func(u *models.User) {
			u.Location = "Old Town"
			u.Bio = "Original bio"
		})

		resp, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"name": "New Name",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "New Name", body["name"])
		assert.Equal(t, "Old Town", body["location"])
		assert.Equal(t, "Original bio", body["bio"])
	})

	t.Run("Valid availability is stored", func(t *testing.T) {
		s, app := newTestServer(t)
		_, token := createUser(t, s, "me@example.com", "Me")

		resp, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"availability": []string{models.AvailabilityWeekends, models.AvailabilityEvenings},
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.ElementsMatch(t, []any{"weekends", "evenings"}, body["availability"])
	})

	t.Run("Invalid availability is rejected", func(t *testing.T) {
		s, app := newTestServer(t)
		_, token := createUser(t, s, "me@example.com", "Me")

		resp, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"availability": []string{"whenever"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["error"], "Invalid availability value")
	})

	t.Run("Visibility can be toggled off", func(t *testing.T) {
		s, app := newTestServer(t)
		user, token := createUser(t, s, "me@example.com", "Me")

		resp, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]any{
			"is_public": false,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["is_public"])

		stored, err := s.store.Users.GetByID(user.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsPublic)
	})
}

func TestGetUserProfile(t *testing.T) {
	s, app := newTestServer(t)
	_, viewerToken := createUser(t, s, "viewer@example.com", "Viewer")
	_, adminToken := createAdmin(t, s)

	public, _ := createUser(t, s, "public@example.com", "Public Person")
	private, privateToken := createUser(t, s, "private@example.com", "Private Person", func(u *models.User) {
		u.IsPublic = false
	})

	t.Run("Public profile is visible", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", public.ID), viewerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, public.Email, body["email"])
	})

	t.Run("Private profile reads as not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", private.ID), viewerToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Owner can view their private profile", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", private.ID), privateToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Admin can view private profiles", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", private.ID), adminToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Missing user is 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/users/9999", viewerToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
