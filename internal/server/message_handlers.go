package server

import (
	"strings"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMessages handles GET /api/messages. ?conversationWith= narrows the
// result to the two-way thread with that user.
func (s *Server) GetMessages(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	otherID := c.QueryInt("conversationWith", 0)
	if otherID > 0 {
		return c.JSON(s.store.Messages.ListConversation(callerID, uint(otherID)))
	}

	return c.JSON(s.store.Messages.ListForUser(callerID))
}

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	var req struct {
		ReceiverID uint   `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.ReceiverID == 0 || strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Receiver and content are required"))
	}

	if req.ReceiverID == callerID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot message yourself"))
	}

	if _, err := s.store.Users.GetByID(req.ReceiverID); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	message := s.store.Messages.Create(models.DirectMessage{
		SenderID:   callerID,
		ReceiverID: req.ReceiverID,
		Content:    strings.TrimSpace(req.Content),
	})

	return c.Status(fiber.StatusCreated).JSON(message)
}

// MarkMessageRead handles PUT /api/messages/:id/read (receiver only)
func (s *Server) MarkMessageRead(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	message, lookupErr := s.store.Messages.GetByID(id)
	if lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	if message.ReceiverID != callerID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the receiver can mark a message as read"))
	}

	updated, markErr := s.store.Messages.MarkRead(id)
	if markErr != nil {
		return models.RespondWithError(c, models.StatusForError(markErr), markErr)
	}

	return c.JSON(updated)
}
