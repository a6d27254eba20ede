package server

import (
	"reelmates/internal/models"

	"github.com/gofiber/fiber/v2"
)

// BrowseMovies handles GET /api/movies
func (s *Server) BrowseMovies(c *fiber.Ctx) error {
	name := c.Query("name")
	year := c.QueryInt("year", 0)
	page := c.QueryInt("page", 1)

	result, err := s.movieService.Browse(c.Context(), name, year, page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// LikeMovie handles POST /api/movies/like
func (s *Server) LikeMovie(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var snap models.MovieSnapshot
	if err := c.BodyParser(&snap); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.movieService.LikeMovie(c.Context(), userID, snap)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

// GetCommonMovies handles GET /api/movies/common/:friendId
func (s *Server) GetCommonMovies(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	movies, getErr := s.movieService.CommonMovies(c.Context(), userID, friendID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	return c.JSON(movies)
}

// GetLikedMovies handles GET /api/movies/:userId/liked
func (s *Server) GetLikedMovies(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	movies, getErr := s.movieService.LikedMovies(c.Context(), userID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	return c.JSON(movies)
}
