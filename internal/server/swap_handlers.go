package server

import (
	"fmt"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSwaps handles GET /api/swaps. It lists requests where the caller is
// requester or receiver.
func (s *Server) GetSwaps(c *fiber.Ctx) error {
	callerID := currentUserID(c)
	return c.JSON(s.store.Swaps.ListByUserID(callerID))
}

// CreateSwap handles POST /api/swaps. The requester is always the caller and
// new requests always start pending, whatever the body claims.
func (s *Server) CreateSwap(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	var req struct {
		ReceiverID     uint   `json:"receiver_id"`
		OfferedSkillID uint   `json:"offered_skill_id"`
		WantedSkillID  uint   `json:"wanted_skill_id"`
		Message        string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.ReceiverID == 0 || req.OfferedSkillID == 0 || req.WantedSkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Receiver, offered skill, and wanted skill are required"))
	}

	if req.ReceiverID == callerID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot request a swap with yourself"))
	}

	if _, err := s.store.Users.GetByID(req.ReceiverID); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}
	if _, err := s.store.Skills.GetByID(req.OfferedSkillID); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}
	if _, err := s.store.Skills.GetByID(req.WantedSkillID); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	swap := s.store.Swaps.Create(models.SwapRequest{
		RequesterID:    callerID,
		ReceiverID:     req.ReceiverID,
		OfferedSkillID: req.OfferedSkillID,
		WantedSkillID:  req.WantedSkillID,
		Status:         models.SwapStatusPending,
		Message:        req.Message,
	})

	return c.Status(fiber.StatusCreated).JSON(swap)
}

// UpdateSwap handles PUT /api/swaps/:id. Only participants may update, and
// status changes must follow the transition table.
func (s *Server) UpdateSwap(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, lookupErr := s.store.Swaps.GetByID(id)
	if lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	if !swap.HasParticipant(callerID) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You are not a participant in this swap request"))
	}

	var req struct {
		Status  *string `json:"status"`
		Message *string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Status != nil {
		next := models.SwapStatus(*req.Status)
		if !models.ValidSwapStatus(next) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid status value"))
		}
		if !models.CanTransition(swap.Status, next) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(
					fmt.Sprintf("Cannot change status from %q to %q", swap.Status, next)))
		}
		swap.Status = next
	}
	if req.Message != nil {
		swap.Message = *req.Message
	}

	updated, updateErr := s.store.Swaps.Update(*swap)
	if updateErr != nil {
		return models.RespondWithError(c, models.StatusForError(updateErr), updateErr)
	}

	return c.JSON(updated)
}

// DeleteSwap handles DELETE /api/swaps/:id (requester only)
func (s *Server) DeleteSwap(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, lookupErr := s.store.Swaps.GetByID(id)
	if lookupErr != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, lookupErr)
	}

	if swap.RequesterID != callerID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the requester can delete a swap request"))
	}

	s.store.Swaps.Delete(id)

	return c.JSON(fiber.Map{"message": "Swap request deleted"})
}
