package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieFilter selects movies by foreign key. DirectorID wins when both are set.
type MovieFilter struct {
	DirectorID *uint
	GenreID    *uint
}

type MovieService interface {
	CreateMovie(ctx context.Context, movie *models.Movie) error
	ReplaceMovie(ctx context.Context, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id uint) error
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	ListMovies(ctx context.Context, filter MovieFilter) ([]models.Movie, error)
}

// TrailerStorage is an object store holding uploaded trailer files.
type TrailerStorage interface {
	Owns(trailerURL string) bool
	DeleteObject(ctx context.Context, trailerURL string) error
}

type movieService struct {
	repo     repository.MovieRepository
	trailers TrailerStorage
	logger   *logrus.Logger
}

// NewMovieService builds the movie use cases. trailers may be nil when no object
// store is configured.
func NewMovieService(repo repository.MovieRepository, trailers TrailerStorage, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:     repo,
		trailers: trailers,
		logger:   logger,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	// Ids are always assigned by the store.
	movie.ID = 0
	return s.repo.Create(ctx, movie)
}

func (s *movieService) ReplaceMovie(ctx context.Context, movie *models.Movie) error {
	var previous *string
	if s.trailers != nil {
		existing, err := s.repo.FindByID(ctx, movie.ID)
		if err != nil {
			return err
		}
		previous = existing.Trailer
	}

	if err := s.repo.Replace(ctx, movie); err != nil {
		return err
	}

	if previous != nil && (movie.Trailer == nil || *movie.Trailer != *previous) {
		s.removeTrailer(ctx, movie.ID, *previous)
	}
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	var previous *string
	if s.trailers != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		previous = existing.Trailer
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if previous != nil {
		s.removeTrailer(ctx, id, *previous)
	}
	return nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) ListMovies(ctx context.Context, filter MovieFilter) ([]models.Movie, error) {
	switch {
	case filter.DirectorID != nil:
		return s.repo.FindByDirectorID(ctx, *filter.DirectorID)
	case filter.GenreID != nil:
		return s.repo.FindByGenreID(ctx, *filter.GenreID)
	default:
		return s.repo.FindAll(ctx)
	}
}

// removeTrailer deletes an uploaded trailer the movie no longer points at.
// Failures are logged; the catalog change has already been committed.
func (s *movieService) removeTrailer(ctx context.Context, movieID uint, trailerURL string) {
	if !s.trailers.Owns(trailerURL) {
		return
	}
	if err := s.trailers.DeleteObject(ctx, trailerURL); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"movie_id": movieID,
			"trailer":  trailerURL,
		}).Warn("Failed to delete old trailer from object storage")
	}
}
