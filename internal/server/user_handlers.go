package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /api/users/search?query=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.Search(c.Context(), c.Query("query"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, getErr := s.userService.GetByID(c.Context(), id)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	return c.JSON(user)
}

// DeleteAccount handles DELETE /api/users/:id
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.userService.DeleteAccount(c.Context(), userID, targetID); delErr != nil {
		return respondServiceError(c, delErr)
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
