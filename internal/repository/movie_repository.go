package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested primary key.
var ErrNotFound = errors.New("record not found")

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	Replace(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)

	// Foreign key filters
	FindByDirectorID(ctx context.Context, directorID uint) ([]models.Movie, error)
	FindByGenreID(ctx context.Context, genreID uint) ([]models.Movie, error)

	Count(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

// Replace overwrites every column of the row identified by movie.ID.
func (r *movieRepository) Replace(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("id = ?", movie.ID).
		Select("*").
		Updates(movie)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.Movie{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindByDirectorID(ctx context.Context, directorID uint) ([]models.Movie, error) {
	return r.findBy(ctx, "director_id", directorID)
}

func (r *movieRepository) FindByGenreID(ctx context.Context, genreID uint) ([]models.Movie, error) {
	return r.findBy(ctx, "genre_id", genreID)
}

func (r *movieRepository) findBy(ctx context.Context, column string, value uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.Movie{}
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("id ASC").
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error
	return total, err
}
