package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
)

type GenreService interface {
	Create(ctx context.Context, genre *models.Genre) error
	Replace(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Genre, error)
	List(ctx context.Context) ([]models.Genre, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, genre *models.Genre) error {
	genre.ID = 0
	return s.repo.Create(ctx, genre)
}

func (s *genreService) Replace(ctx context.Context, genre *models.Genre) error {
	return s.repo.Replace(ctx, genre)
}

func (s *genreService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *genreService) GetByID(ctx context.Context, id uint) (*models.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) List(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}
