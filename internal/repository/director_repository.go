package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	Replace(ctx context.Context, director *models.Director) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	FindAll(ctx context.Context) ([]models.Director, error)
	Count(ctx context.Context) (int64, error)
}

type directorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewDirectorRepository(db *database.Database) DirectorRepository {
	return &directorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *directorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(director).Error
}

func (r *directorRepository) Replace(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Director{}).
		Where("id = ?", director.ID).
		Select("*").
		Updates(director)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Director{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var director models.Director
	err := r.db.WithContext(ctx).First(&director, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	directors := []models.Director{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&directors).Error
	return directors, err
}

func (r *directorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Director{}).Count(&total).Error
	return total, err
}
