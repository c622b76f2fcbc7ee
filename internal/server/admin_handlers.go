package server

import (
	"skillswap/internal/cache"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminGetUsers handles GET /api/admin/users. Unlike the member listing this
// includes banned and private accounts, otherwise ban/unban would be blind.
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	return c.JSON(s.store.Users.ListAll())
}

// AdminUpdateUser handles PUT /api/admin/users with action ban/unban.
func (s *Server) AdminUpdateUser(c *fiber.Ctx) error {
	var req struct {
		UserID uint   `json:"user_id"`
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.UserID == 0 || req.Action == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID and action are required"))
	}

	user, err := s.store.Users.GetByID(req.UserID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	switch req.Action {
	case "ban":
		user.IsBanned = true
	case "unban":
		user.IsBanned = false
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Action must be \"ban\" or \"unban\""))
	}

	updated, updateErr := s.store.Users.Update(*user)
	if updateErr != nil {
		return models.RespondWithError(c, models.StatusForError(updateErr), updateErr)
	}

	cache.InvalidateUser(c.Context(), user.ID)
	cache.InvalidateBrowse(c.Context())

	return c.JSON(updated)
}

// AdminDeleteUser handles DELETE /api/admin/users/:id. The account's skill
// listings go with it so the catalog holds no orphans.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, lookupErr := s.store.Users.GetByID(id); lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	s.store.Skills.DeleteByUserID(id)
	s.store.Users.Delete(id)

	cache.InvalidateUser(c.Context(), id)
	cache.InvalidateBrowse(c.Context())

	return c.JSON(fiber.Map{"message": "User deleted"})
}

// AdminGetPendingSkills handles GET /api/admin/skills (the unapproved queue)
func (s *Server) AdminGetPendingSkills(c *fiber.Ctx) error {
	return c.JSON(s.store.Skills.ListPending())
}

// AdminUpdateSkill handles PUT /api/admin/skills with action
// approve/revoke/reject. Reject removes the listing entirely.
func (s *Server) AdminUpdateSkill(c *fiber.Ctx) error {
	var req struct {
		SkillID uint   `json:"skill_id"`
		Action  string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.SkillID == 0 || req.Action == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Skill ID and action are required"))
	}

	skill, err := s.store.Skills.GetByID(req.SkillID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	switch req.Action {
	case "approve":
		skill.IsApproved = true
	case "revoke":
		skill.IsApproved = false
	case "reject":
		s.store.Skills.Delete(skill.ID)
		cache.InvalidateBrowse(c.Context())
		return c.JSON(fiber.Map{"message": "Skill rejected"})
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Action must be \"approve\", \"revoke\", or \"reject\""))
	}

	updated, updateErr := s.store.Skills.Update(*skill)
	if updateErr != nil {
		return models.RespondWithError(c, models.StatusForError(updateErr), updateErr)
	}

	cache.InvalidateBrowse(c.Context())

	return c.JSON(updated)
}

// AdminGetSwaps handles GET /api/admin/swaps
func (s *Server) AdminGetSwaps(c *fiber.Ctx) error {
	return c.JSON(s.store.Swaps.ListAll())
}

// AdminUpdateSwap handles PUT /api/admin/swaps with action approve/reject/flag.
// Moderation overrides the participant transition table; flagging in
// particular is allowed from any status.
func (s *Server) AdminUpdateSwap(c *fiber.Ctx) error {
	var req struct {
		SwapID uint   `json:"swap_id"`
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.SwapID == 0 || req.Action == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Swap ID and action are required"))
	}

	swap, err := s.store.Swaps.GetByID(req.SwapID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	switch req.Action {
	case "approve":
		swap.Status = models.SwapStatusAccepted
	case "reject":
		swap.Status = models.SwapStatusRejected
	case "flag":
		swap.Status = models.SwapStatusFlagged
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Action must be \"approve\", \"reject\", or \"flag\""))
	}

	updated, updateErr := s.store.Swaps.Update(*swap)
	if updateErr != nil {
		return models.RespondWithError(c, models.StatusForError(updateErr), updateErr)
	}

	return c.JSON(updated)
}

// AdminGetBroadcasts handles GET /api/admin/broadcasts (incl. inactive)
func (s *Server) AdminGetBroadcasts(c *fiber.Ctx) error {
	return c.JSON(s.store.Broadcasts.ListAll())
}

// AdminCreateBroadcast handles POST /api/admin/broadcasts
func (s *Server) AdminCreateBroadcast(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Type    string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	broadcastType := models.BroadcastType(req.Type)
	if req.Type == "" {
		broadcastType = models.BroadcastAnnouncement
	} else if !models.ValidBroadcastType(broadcastType) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Type must be \"announcement\", \"update\", or \"maintenance\""))
	}

	broadcast := s.store.Broadcasts.Create(models.BroadcastMessage{
		AdminID:  callerID,
		Title:    req.Title,
		Content:  req.Content,
		Type:     broadcastType,
		IsActive: true,
	})

	cache.InvalidateBroadcasts(c.Context())

	return c.Status(fiber.StatusCreated).JSON(broadcast)
}

// AdminUpdateBroadcast handles PUT /api/admin/broadcasts/:id
func (s *Server) AdminUpdateBroadcast(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	broadcast, lookupErr := s.store.Broadcasts.GetByID(id)
	if lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	var req struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Type     *string `json:"type"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title != nil {
		broadcast.Title = *req.Title
	}
	if req.Content != nil {
		broadcast.Content = *req.Content
	}
	if req.Type != nil {
		broadcastType := models.BroadcastType(*req.Type)
		if !models.ValidBroadcastType(broadcastType) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Type must be \"announcement\", \"update\", or \"maintenance\""))
		}
		broadcast.Type = broadcastType
	}
	if req.IsActive != nil {
		broadcast.IsActive = *req.IsActive
	}

	updated, updateErr := s.store.Broadcasts.Update(*broadcast)
	if updateErr != nil {
		return models.RespondWithError(c, models.StatusForError(updateErr), updateErr)
	}

	cache.InvalidateBroadcasts(c.Context())

	return c.JSON(updated)
}

// AdminDeleteBroadcast handles DELETE /api/admin/broadcasts/:id
func (s *Server) AdminDeleteBroadcast(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, lookupErr := s.store.Broadcasts.GetByID(id); lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	s.store.Broadcasts.Delete(id)
	cache.InvalidateBroadcasts(c.Context())

	return c.JSON(fiber.Map{"message": "Broadcast deleted"})
}

// GetActiveBroadcasts handles GET /api/broadcasts for members.
func (s *Server) GetActiveBroadcasts(c *fiber.Ctx) error {
	var broadcasts []models.BroadcastMessage
	err := cache.CacheAside(c.Context(), cache.BroadcastsKey, &broadcasts, cache.BroadcastsTTL, func() error {
		broadcasts = s.store.Broadcasts.ListActive()
		return nil
	})
	if err != nil {
		broadcasts = s.store.Broadcasts.ListActive()
	}

	return c.JSON(broadcasts)
}
