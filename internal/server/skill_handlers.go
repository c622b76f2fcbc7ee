package server

import (
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills. Without a filter it lists the approved
// catalog; ?userId= narrows to one member. Owners see their own unapproved
// entries, everyone else only approved ones.
func (s *Server) GetSkills(c *fiber.Ctx) error {
	callerID := currentUserID(c)
	userID := c.QueryInt("userId", 0)

	var skills []models.Skill
	if userID > 0 {
		if uint(userID) == callerID {
			skills = s.store.Skills.ListByUserID(uint(userID))
		} else {
			skills = []models.Skill{}
			for _, sk := range s.store.Skills.ListByUserID(uint(userID)) {
				if sk.IsApproved {
					skills = append(skills, sk)
				}
			}
		}
	} else {
		skills = s.store.Skills.ListApproved()
	}

	return c.JSON(skills)
}

// CreateSkill handles POST /api/skills
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	user, err := s.currentUser(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Type == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and type are required"))
	}

	skillType := models.SkillType(req.Type)
	if !models.ValidSkillType(skillType) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Type must be \"offered\" or \"wanted\""))
	}

	if err := validation.ValidateSkillName(req.Name); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	name := strings.TrimSpace(req.Name)
	for _, sk := range s.store.Skills.ListByUserID(user.ID) {
		if sk.Type == skillType && strings.EqualFold(sk.Name, name) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("You already have this skill in your list"))
		}
	}

	// Listings go live immediately; moderation happens after the fact via the
	// admin queue (revoke or reject).
	skill := s.store.Skills.Create(models.Skill{
		UserID:      user.ID,
		Name:        name,
		Type:        skillType,
		Description: req.Description,
		IsApproved:  true,
	})

	cache.InvalidateBrowse(c.Context())

	return c.Status(fiber.StatusCreated).JSON(skill)
}

// DeleteSkill handles DELETE /api/skills/:id (owner only)
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	skill, lookupErr := s.store.Skills.GetByID(id)
	if lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	if skill.UserID != callerID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only delete your own skills"))
	}

	s.store.Skills.Delete(id)
	cache.InvalidateBrowse(c.Context())

	return c.JSON(fiber.Map{"message": "Skill deleted"})
}
