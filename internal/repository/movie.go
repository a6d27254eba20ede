package repository

import (
	"context"
	"errors"

	"reelmates/internal/cache"
	"reelmates/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieRepository defines persistence operations for the local movie cache
// and the favorites relation.
type MovieRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	HasFavorite(ctx context.Context, userID, movieID uint) (bool, error)
	AddFavorite(ctx context.Context, userID, movieID uint) error
	GetLikedMovies(ctx context.Context, userID uint) ([]models.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository returns a new MovieRepository implementation.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// GetByID returns the cached movie row, or (nil, nil) when the catalog id has
// never been liked.
func (r *movieRepository) GetByID(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Lost a race against another first like; the winner's row stands.
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(movie).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *movieRepository) HasFavorite(ctx context.Context, userID, movieID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AddFavorite inserts the like edge. The composite primary key plus the
// do-nothing conflict clause make the operation idempotent under races.
func (r *movieRepository) AddFavorite(ctx context.Context, userID, movieID uint) error {
	favorite := &models.Favorite{UserID: userID, MovieID: movieID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateLikedMovies(ctx, userID)
	return nil
}

func (r *movieRepository) GetLikedMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	movies := []models.Movie{}
	key := cache.LikedMoviesKey(userID)

	err := cache.Aside(ctx, key, &movies, cache.LikedMoviesTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("movies").
			Joins("JOIN favorites ON favorites.movie_id = movies.id").
			Where("favorites.user_id = ?", userID).
			Find(&movies).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return movies, nil
}
