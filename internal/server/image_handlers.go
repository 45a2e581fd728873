package server

import (
	"io"

	"corkboard/internal/models"
	"corkboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// readMultipartFile pulls the uploaded "file" part out of a multipart form.
// On failure it writes a 400 response and returns errResponseWritten.
func (s *Server) readMultipartFile(c *fiber.Ctx) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Multipart field 'file' is required"))
		return "", nil, errResponseWritten
	}

	f, err := fileHeader.Open()
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
		return "", nil, errResponseWritten
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
		return "", nil, errResponseWritten
	}
	return fileHeader.Filename, content, nil
}

// UploadPostImage handles POST /api/images/post/:postId
func (s *Server) UploadPostImage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	filename, content, err := s.readMultipartFile(c)
	if err != nil {
		return nil
	}

	image, err := s.imageService.ReplacePostImage(c.Context(), service.UploadImageInput{
		OwnerID:  postID,
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(image)
}

// GetPostImage handles GET /api/images/post/:postId. A post without an
// image yields 204. The content type is always image/jpeg, matching what
// clients of the original API expect.
func (s *Server) GetPostImage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	data, err := s.imageService.GetPostImage(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}

// UploadProfileImage handles POST /api/images/user/:userId
func (s *Server) UploadProfileImage(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	filename, content, err := s.readMultipartFile(c)
	if err != nil {
		return nil
	}

	image, err := s.imageService.ReplaceProfileImage(c.Context(), service.UploadImageInput{
		OwnerID:  userID,
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(image)
}

// GetProfileImage handles GET /api/images/user/:userId
func (s *Server) GetProfileImage(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	data, err := s.imageService.GetProfileImage(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if data == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}
