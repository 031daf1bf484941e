package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
)

type DirectorService interface {
	Create(ctx context.Context, director *models.Director) error
	Replace(ctx context.Context, director *models.Director) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Director, error)
	List(ctx context.Context) ([]models.Director, error)
}

type directorService struct {
	repo repository.DirectorRepository
}

func NewDirectorService(repo repository.DirectorRepository) DirectorService {
	return &directorService{repo: repo}
}

func (s *directorService) Create(ctx context.Context, director *models.Director) error {
	director.ID = 0
	return s.repo.Create(ctx, director)
}

// Replace leaves movies that reference the director untouched.
func (s *directorService) Replace(ctx context.Context, director *models.Director) error {
	return s.repo.Replace(ctx, director)
}

func (s *directorService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *directorService) GetByID(ctx context.Context, id uint) (*models.Director, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *directorService) List(ctx context.Context) ([]models.Director, error) {
	return s.repo.FindAll(ctx)
}
