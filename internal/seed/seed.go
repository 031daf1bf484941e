// Package seed loads the bundled catalog fixture into the store at boot.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

//go:embed data.json
var bundled []byte

type MovieRecord struct {
	PK          uint    `json:"pk"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Trailer     *string `json:"trailer"`
	Year        *int    `json:"year"`
	Rating      *int    `json:"rating"`
	GenreID     *uint   `json:"genre_id"`
	DirectorID  *uint   `json:"director_id"`
}

type NamedRecord struct {
	PK   uint    `json:"pk"`
	Name *string `json:"name"`
}

// Dataset is a fixture where every record carries its own primary key.
type Dataset struct {
	Movies    []MovieRecord `json:"movies"`
	Directors []NamedRecord `json:"directors"`
	Genres    []NamedRecord `json:"genres"`
}

func Parse(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	return &ds, nil
}

// Default returns the dataset compiled into the binary.
func Default() (*Dataset, error) {
	return Parse(bundled)
}

// Schema is the part of the store the loader needs beyond plain inserts.
type Schema interface {
	Reset(ctx context.Context) error
	SyncSequences(ctx context.Context) error
}

type Options struct {
	ResetAndSeed bool
	SeedIfEmpty  bool
}

type Loader struct {
	schema    Schema
	movies    repository.MovieRepository
	directors repository.DirectorRepository
	genres    repository.GenreRepository
	logger    *logrus.Logger
}

func NewLoader(schema Schema, movies repository.MovieRepository, directors repository.DirectorRepository, genres repository.GenreRepository, logger *logrus.Logger) *Loader {
	return &Loader{
		schema:    schema,
		movies:    movies,
		directors: directors,
		genres:    genres,
		logger:    logger,
	}
}

// Run applies the boot policy: a full reset when asked for, otherwise a load only
// into an empty catalog. It reports whether the dataset was loaded.
func (l *Loader) Run(ctx context.Context, ds *Dataset, opts Options) (bool, error) {
	if opts.ResetAndSeed {
		if err := l.schema.Reset(ctx); err != nil {
			return false, fmt.Errorf("failed to reset schema: %w", err)
		}
	} else {
		if !opts.SeedIfEmpty {
			return false, nil
		}
		empty, err := l.isEmpty(ctx)
		if err != nil {
			return false, err
		}
		if !empty {
			l.logger.Info("Catalog already populated, skipping seed")
			return false, nil
		}
	}

	if err := l.Load(ctx, ds); err != nil {
		return false, err
	}
	if err := l.schema.SyncSequences(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Load inserts the whole dataset, one record per transaction, stopping at the
// first failure. Movies go first; nothing checks their director and genre ids.
func (l *Loader) Load(ctx context.Context, ds *Dataset) error {
	for _, rec := range ds.Movies {
		movie := &models.Movie{
			ID:          rec.PK,
			Title:       rec.Title,
			Description: rec.Description,
			Trailer:     rec.Trailer,
			Year:        rec.Year,
			Rating:      rec.Rating,
			GenreID:     rec.GenreID,
			DirectorID:  rec.DirectorID,
		}
		if err := l.movies.Create(ctx, movie); err != nil {
			return fmt.Errorf("failed to seed movie %d: %w", rec.PK, err)
		}
	}

	for _, rec := range ds.Directors {
		if err := l.directors.Create(ctx, &models.Director{ID: rec.PK, Name: rec.Name}); err != nil {
			return fmt.Errorf("failed to seed director %d: %w", rec.PK, err)
		}
	}

	for _, rec := range ds.Genres {
		if err := l.genres.Create(ctx, &models.Genre{ID: rec.PK, Name: rec.Name}); err != nil {
			return fmt.Errorf("failed to seed genre %d: %w", rec.PK, err)
		}
	}

	l.logger.WithFields(logrus.Fields{
		"movies":    len(ds.Movies),
		"directors": len(ds.Directors),
		"genres":    len(ds.Genres),
	}).Info("Seed dataset loaded")
	return nil
}

func (l *Loader) isEmpty(ctx context.Context) (bool, error) {
	counters := []func(context.Context) (int64, error){
		l.movies.Count,
		l.directors.Count,
		l.genres.Count,
	}
	for _, count := range counters {
		n, err := count(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to count catalog rows: %w", err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}
