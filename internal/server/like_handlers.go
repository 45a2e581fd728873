package server

import (
	"corkboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLikeCount handles GET /api/posts/:postId/likes. The body is the bare
// count, nothing else.
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	count, err := s.likeService.CountByPostID(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(count)
}

// CreateLike handles POST /api/posts/:postId/likes
func (s *Server) CreateLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("user_id is required"))
	}

	like, err := s.likeService.CreateLike(c.Context(), postID, req.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(like)
}

// DeleteLike handles DELETE /api/posts/:postId/likes/:userId. The removed
// like is echoed back.
func (s *Server) DeleteLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	like, err := s.likeService.DeleteLike(c.Context(), postID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(like)
}
