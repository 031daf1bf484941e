package services

import (
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorServiceLifecycle(t *testing.T) {
	svc := NewDirectorService(repository.NewDirectorRepository(testutil.NewDatabase(t)))
	ctx := t.Context()

	director := &models.Director{ID: 77, Name: testutil.Ptr("Director A")}
	require.NoError(t, svc.Create(ctx, director))
	assert.EqualValues(t, 1, director.ID, "client supplied id is ignored")

	require.NoError(t, svc.Replace(ctx, &models.Director{ID: 1, Name: testutil.Ptr("Director B")}))
	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Director B", *got.Name)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), repository.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGenreServiceLifecycle(t *testing.T) {
	svc := NewGenreService(repository.NewGenreRepository(testutil.NewDatabase(t)))
	ctx := t.Context()

	genre := &models.Genre{Name: testutil.Ptr("Drama")}
	require.NoError(t, svc.Create(ctx, genre))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, genre.ID, all[0].ID)

	assert.ErrorIs(t, svc.Replace(ctx, &models.Genre{ID: genre.ID + 1}), repository.ErrNotFound)
	_, err = svc.GetByID(ctx, genre.ID+1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
