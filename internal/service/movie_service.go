package service

import (
	"context"

	"reelmates/internal/catalog"
	"reelmates/internal/middleware"
	"reelmates/internal/models"
	"reelmates/internal/repository"
)

// Catalog is the subset of the TMDB client the movie service depends on.
type Catalog interface {
	Browse(ctx context.Context, name string, year, page int) (*catalog.Page, error)
}

// MovieService provides catalog browsing and favorites business logic.
type MovieService struct {
	movieRepo repository.MovieRepository
	userRepo  repository.UserRepository
	catalog   Catalog
}

// NewMovieService returns a new MovieService.
func NewMovieService(movieRepo repository.MovieRepository, userRepo repository.UserRepository, cat Catalog) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		userRepo:  userRepo,
		catalog:   cat,
	}
}

// Browse proxies a catalog listing page. Upstream failures degrade to an
// empty page so the browse UI stays usable while TMDB is down.
func (s *MovieService) Browse(ctx context.Context, name string, year, page int) (*catalog.Page, error) {
	if page <= 0 {
		page = 1
	}

	result, err := s.catalog.Browse(ctx, name, year, page)
	if err != nil {
		middleware.CatalogRequests.WithLabelValues("error").Inc()
		middleware.Logger.WarnContext(ctx, "catalog request failed, serving empty page",
			"error", err, "name", name, "year", year, "page", page)
		return &catalog.Page{Page: page, Results: []catalog.MovieSummary{}}, nil
	}

	middleware.CatalogRequests.WithLabelValues("success").Inc()
	return result, nil
}

// LikeMovie records the movie in the local cache and adds it to the user's
// favorites. Liking the same movie twice is a no-op; the returned message
// tells the two cases apart.
func (s *MovieService) LikeMovie(ctx context.Context, userID uint, snap models.MovieSnapshot) (string, error) {
	if snap.ID == 0 {
		return "", models.NewValidationError("Movie id is required")
	}
	if snap.MovieName == "" {
		return "", models.NewValidationError("Movie name is required")
	}

	movie, err := s.movieRepo.GetByID(ctx, snap.ID)
	if err != nil {
		return "", err
	}
	if movie == nil {
		if err := s.movieRepo.Create(ctx, models.NewMovieFromSnapshot(snap)); err != nil {
			return "", err
		}
	} else if movie.Backfill(snap) {
		if err := s.movieRepo.Update(ctx, movie); err != nil {
			return "", err
		}
	}

	has, err := s.movieRepo.HasFavorite(ctx, userID, snap.ID)
	if err != nil {
		return "", err
	}
	if has {
		return "Movie already in favorites", nil
	}

	if err := s.movieRepo.AddFavorite(ctx, userID, snap.ID); err != nil {
		return "", err
	}
	return "Movie added to favorites", nil
}

// LikedMovies returns the movies the given user has favorited.
func (s *MovieService) LikedMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.movieRepo.GetLikedMovies(ctx, userID)
}

// CommonMovies returns the movies both users have favorited. The rows come
// from the friend's list, so their stored metadata is what the caller sees.
func (s *MovieService) CommonMovies(ctx context.Context, userID, friendID uint) ([]models.Movie, error) {
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		return nil, err
	}

	mine, err := s.movieRepo.GetLikedMovies(ctx, userID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.movieRepo.GetLikedMovies(ctx, friendID)
	if err != nil {
		return nil, err
	}

	liked := make(map[uint]struct{}, len(mine))
	for _, m := range mine {
		liked[m.ID] = struct{}{}
	}

	common := []models.Movie{}
	for _, m := range theirs {
		if _, ok := liked[m.ID]; ok {
			common = append(common, m)
		}
	}
	return common, nil
}
