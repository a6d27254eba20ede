package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(friends)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	senders, err := s.friendService.GetIncomingRequests(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(senders)
}

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, sendErr := s.friendService.SendRequest(c.Context(), userID, targetUserID)
	if sendErr != nil {
		return respondServiceError(c, sendErr)
	}
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// AcceptFriendRequest handles POST /api/friends/requests/:userId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requesterID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, acceptErr := s.friendService.AcceptRequest(c.Context(), userID, requesterID)
	if acceptErr != nil {
		return respondServiceError(c, acceptErr)
	}
	return c.JSON(friendship)
}

// RemoveFriend handles DELETE /api/friends/:userId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetUserID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if removeErr := s.friendService.Remove(c.Context(), userID, targetUserID); removeErr != nil {
		return respondServiceError(c, removeErr)
	}
	return c.JSON(fiber.Map{"message": "Friendship removed"})
}
