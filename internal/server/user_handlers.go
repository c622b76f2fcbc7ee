package server

import (
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// userWithSkills is the browse-listing shape: a public profile plus the
// owner's approved skills.
type userWithSkills struct {
	models.User
	Skills []models.Skill `json:"skills"`
}

// GetUsers handles GET /api/users. It lists public, non-banned members with
// their approved skills, optionally filtered by a skill-name substring, and
// serves repeat queries from the Redis cache.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	filter := strings.ToLower(strings.TrimSpace(c.Query("skill")))
	page := parsePagination(c, 100)

	var results []userWithSkills
	err := cache.CacheAside(c.Context(), cache.BrowseKey(filter), &results, cache.BrowseTTL, func() error {
		results = s.browseUsers(filter)
		return nil
	})
	if err != nil {
		// Cache trouble must not take down browsing.
		results = s.browseUsers(filter)
	}

	return c.JSON(paginate(results, page))
}

// browseUsers builds the listing from the store.
func (s *Server) browseUsers(filter string) []userWithSkills {
	results := []userWithSkills{}
	for _, user := range s.store.Users.List() {
		if !user.IsPublic {
			continue
		}

		approved := []models.Skill{}
		for _, sk := range s.store.Skills.ListByUserID(user.ID) {
			if sk.IsApproved {
				approved = append(approved, sk)
			}
		}

		if filter != "" {
			match := false
			for _, sk := range approved {
				if strings.Contains(strings.ToLower(sk.Name), filter) {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}

		results = append(results, userWithSkills{User: user, Skills: approved})
	}
	return results
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	// Pointer fields distinguish "absent" from "set to zero value" so the
	// merge only touches what the client sent.
	var req struct {
		Name         *string   `json:"name"`
		Location     *string   `json:"location"`
		ProfilePhoto *string   `json:"profile_photo"`
		Bio          *string   `json:"bio"`
		IsPublic     *bool     `json:"is_public"`
		Availability *[]string `json:"availability"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name != nil {
		if err := validation.ValidateName(*req.Name); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}
	if req.Availability != nil {
		for _, slot := range *req.Availability {
			if !models.ValidAvailability(slot) {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError("Invalid availability value: "+slot))
			}
		}
		user.Availability = *req.Availability
	}

	updated, updateErr := s.store.Users.Update(*user)
	if updateErr != nil {
		return models.RespondWithError(c, models.StatusForError(updateErr), updateErr)
	}

	cache.InvalidateUser(c.Context(), user.ID)
	cache.InvalidateBrowse(c.Context())

	return c.JSON(updated)
}

// GetUserProfile handles GET /api/users/:id. Private and banned profiles are
// indistinguishable from missing ones unless the caller is the owner or an admin.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, lookupErr := s.store.Users.GetByID(id)
	if lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	if user.IsBanned || !user.IsPublic {
		caller, callerErr := s.currentUser(c)
		if callerErr != nil {
			return nil
		}
		if caller.ID != user.ID && !caller.IsAdmin() {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("User", id))
		}
	}

	return c.JSON(user)
}
