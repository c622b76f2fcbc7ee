package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetRatings handles GET /api/ratings. ?userId= selects whose received
// ratings to list (defaults to the caller); each entry carries the rater's
// display name and photo.
func (s *Server) GetRatings(c *fiber.Ctx) error {
	userID := uint(c.QueryInt("userId", int(currentUserID(c))))

	ratings := s.store.Ratings.ListByRatedUser(userID)
	enriched := make([]models.RatingWithRater, 0, len(ratings))
	for _, r := range ratings {
		entry := models.RatingWithRater{Rating: r}
		if rater, err := s.store.Users.GetByID(r.RaterID); err == nil {
			entry.RaterName = rater.Name
			entry.RaterPhoto = rater.ProfilePhoto
		}
		enriched = append(enriched, entry)
	}

	return c.JSON(enriched)
}

// CreateRating handles POST /api/ratings
func (s *Server) CreateRating(c *fiber.Ctx) error {
	callerID := currentUserID(c)

	var req struct {
		SwapRequestID uint   `json:"swap_request_id"`
		Rating        int    `json:"rating"`
		Feedback      string `json:"feedback"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.SwapRequestID == 0 || req.Rating == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Swap request ID and rating are required"))
	}

	if req.Rating < 1 || req.Rating > 5 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Rating must be between 1 and 5"))
	}

	// A swap the caller was never part of looks the same as one that does not
	// exist.
	swap, err := s.store.Swaps.GetByID(req.SwapRequestID)
	if err != nil || !swap.HasParticipant(callerID) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid swap request"))
	}

	if swap.Status != models.SwapStatusCompleted {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Can only rate completed swaps"))
	}

	if existing := s.store.Ratings.FindBySwapAndRater(swap.ID, callerID); existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You have already rated this swap"))
	}

	ratedUserID := swap.RequesterID
	if callerID == swap.RequesterID {
		ratedUserID = swap.ReceiverID
	}

	rating := s.store.Ratings.Create(models.Rating{
		SwapRequestID: swap.ID,
		RaterID:       callerID,
		RatedUserID:   ratedUserID,
		Rating:        req.Rating,
		Feedback:      req.Feedback,
	})

	return c.Status(fiber.StatusCreated).JSON(rating)
}
