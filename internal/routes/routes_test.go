package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/testutil"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	err error
}

func (s stubUploader) GeneratePresignedURL(ctx context.Context, filename string) (string, string, error) {
	return "http://minio/put/" + filename, "http://minio/trailers/" + filename, s.err
}

type testApp struct {
	app       *fiber.App
	movies    repository.MovieRepository
	directors repository.DirectorRepository
	genres    repository.GenreRepository
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	db := testutil.NewDatabase(t)
	log := testutil.NewLogger()

	ta := testApp{
		movies:    repository.NewMovieRepository(db),
		directors: repository.NewDirectorRepository(db),
		genres:    repository.NewGenreRepository(db),
	}

	ta.app = NewApp(config.ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second}, log)
	Setup(ta.app, Handlers{
		Movie:    handlers.NewMovieHandler(services.NewMovieService(ta.movies, nil, log), log),
		Director: handlers.NewDirectorHandler(services.NewDirectorService(ta.directors), log),
		Genre:    handlers.NewGenreHandler(services.NewGenreService(ta.genres), log),
		Upload:   handlers.NewUploadHandler(stubUploader{}, log),
	})
	return ta
}

func (ta testApp) do(t *testing.T, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (ta testApp) seedMovies(t *testing.T) {
	t.Helper()
	rows := []models.Movie{
		{ID: 1, Title: testutil.Ptr("Yellowstone"), Year: testutil.Ptr(2018), Rating: testutil.Ptr(8), DirectorID: testutil.Ptr(uint(1)), GenreID: testutil.Ptr(uint(17))},
		{ID: 2, Title: testutil.Ptr("The Hateful Eight"), Year: testutil.Ptr(2015), Rating: testutil.Ptr(8), DirectorID: testutil.Ptr(uint(2)), GenreID: testutil.Ptr(uint(4))},
		{ID: 3, Title: testutil.Ptr("Django Unchained"), Year: testutil.Ptr(2012), Rating: testutil.Ptr(8), DirectorID: testutil.Ptr(uint(2)), GenreID: testutil.Ptr(uint(17))},
	}
	for i := range rows {
		require.NoError(t, ta.movies.Create(t.Context(), &rows[i]))
	}
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestListMovies(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)

	code, raw := ta.do(t, http.MethodGet, "/movies/", "")
	require.Equal(t, http.StatusOK, code)
	movies := decode[[]handlers.MovieResponse](t, raw)
	require.Len(t, movies, 3)
	assert.EqualValues(t, 1, movies[0].ID)

	code, _ = ta.do(t, http.MethodGet, "/movies", "")
	assert.Equal(t, http.StatusOK, code, "trailing slash is optional")
}

func TestListMoviesFilters(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []uint
	}{
		{name: "director", query: "?director_id=2", wantIDs: []uint{2, 3}},
		{name: "genre", query: "?genre_id=17", wantIDs: []uint{1, 3}},
		{name: "director wins over genre", query: "?director_id=1&genre_id=4", wantIDs: []uint{1}},
		{name: "director wins over bad genre", query: "?director_id=1&genre_id=abc", wantIDs: []uint{1}},
		{name: "no matches", query: "?director_id=999", wantIDs: []uint{}},
		{name: "id above 32 bits", query: "?genre_id=4294967296", wantIDs: []uint{}},
		{name: "empty value is ignored", query: "?director_id=", wantIDs: []uint{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, raw := ta.do(t, http.MethodGet, "/movies/"+tt.query, "")
			require.Equal(t, http.StatusOK, code, string(raw))

			movies := decode[[]handlers.MovieResponse](t, raw)
			ids := make([]uint, 0, len(movies))
			for _, m := range movies {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListMoviesEmptyResultIsArray(t *testing.T) {
	ta := newTestApp(t)

	code, raw := ta.do(t, http.MethodGet, "/movies/?genre_id=5", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestListMoviesRejectsBadFilter(t *testing.T) {
	ta := newTestApp(t)

	for _, query := range []string{"?director_id=abc", "?genre_id=1.5", "?director_id=-3"} {
		code, raw := ta.do(t, http.MethodGet, "/movies/"+query, "")
		assert.Equal(t, http.StatusBadRequest, code, query)
		body := decode[map[string]interface{}](t, raw)
		assert.Contains(t, body, "error")
	}
}

func TestMovieRoundTrip(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)

	payload := `{
		"id": 1,
		"title": "Dune",
		"description": "Desert planet",
		"trailer": "https://www.youtube.com/watch?v=8g18jFHCLXk",
		"year": 2021,
		"rating": 8,
		"genre_id": 7,
		"director_id": 5,
		"unknown": "ignored"
	}`
	code, raw := ta.do(t, http.MethodPost, "/movies/", payload)
	require.Equal(t, http.StatusCreated, code, string(raw))

	created := decode[handlers.MovieResponse](t, raw)
	assert.EqualValues(t, 4, created.ID, "client id is ignored")
	assert.Equal(t, "Dune", *created.Title)

	code, raw = ta.do(t, http.MethodGet, "/movies/4", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{
		"id": 4,
		"title": "Dune",
		"description": "Desert planet",
		"trailer": "https://www.youtube.com/watch?v=8g18jFHCLXk",
		"year": 2021,
		"rating": 8,
		"genre_id": 7,
		"director_id": 5
	}`, string(raw))

	code, raw = ta.do(t, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Yellowstone", *decode[handlers.MovieResponse](t, raw).Title)
}

func TestCreateMovieWithoutContentType(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/movies/", strings.NewReader(`{"title": "Plain"}`))
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateMovieMissingFieldsAreNull(t *testing.T) {
	ta := newTestApp(t)

	code, raw := ta.do(t, http.MethodPost, "/movies/", `{"title": "Sparse"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{
		"id": 1, "title": "Sparse", "description": null, "trailer": null,
		"year": null, "rating": null, "genre_id": null, "director_id": null
	}`, string(raw))
}

func TestCreateMovieRejectsMalformedBody(t *testing.T) {
	ta := newTestApp(t)

	bodies := map[string]string{
		"not json":   `{"title": `,
		"wrong type": `{"year": "nineteen ninety"}`,
		"array":      `[{"title": "x"}]`,
		"null":       `null`,
		"empty":      ``,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			code, raw := ta.do(t, http.MethodPost, "/movies/", body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, string(raw), `"error"`)
		})
	}

	total, err := ta.movies.Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestReplaceMovie(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)

	payload := `{"title": "Yellowstone S2", "description": "More ranch", "trailer": "https://t", "year": 2019, "rating": 9, "genre_id": 18, "director_id": 6}`
	code, raw := ta.do(t, http.MethodPut, "/movies/1", payload)
	require.Equal(t, http.StatusOK, code, string(raw))
	assert.JSONEq(t, `{"id": 1, "title": "Yellowstone S2", "description": "More ranch", "trailer": "https://t", "year": 2019, "rating": 9, "genre_id": 18, "director_id": 6}`, string(raw))

	code, raw = ta.do(t, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id": 1, "title": "Yellowstone S2", "description": "More ranch", "trailer": "https://t", "year": 2019, "rating": 9, "genre_id": 18, "director_id": 6}`, string(raw))
}

func TestReplaceMovieIsFullReplace(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)

	code, _ := ta.do(t, http.MethodPut, "/movies/2", `{"title": "Renamed"}`)
	require.Equal(t, http.StatusOK, code)

	code, raw := ta.do(t, http.MethodGet, "/movies/2", "")
	require.Equal(t, http.StatusOK, code)
	movie := decode[handlers.MovieResponse](t, raw)
	assert.Equal(t, "Renamed", *movie.Title)
	assert.Nil(t, movie.Year)
	assert.Nil(t, movie.DirectorID)
	assert.Nil(t, movie.GenreID)
}

func TestMovieItemErrors(t *testing.T) {
	ta := newTestApp(t)

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/movies/999", "", http.StatusNotFound},
		{http.MethodPut, "/movies/999", `{"title": "x"}`, http.StatusNotFound},
		{http.MethodDelete, "/movies/999", "", http.StatusNotFound},
		{http.MethodGet, "/movies/abc", "", http.StatusBadRequest},
		{http.MethodPut, "/movies/abc", `{"title": "x"}`, http.StatusBadRequest},
		{http.MethodDelete, "/movies/-1", "", http.StatusBadRequest},
		{http.MethodGet, "/movies/4294967296", "", http.StatusNotFound},
		{http.MethodGet, "/movies/9223372036854775808", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			code, raw := ta.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, code)
			body := decode[map[string]interface{}](t, raw)
			assert.NotEmpty(t, body["error"])
		})
	}

	_, raw := ta.do(t, http.MethodGet, "/movies/999", "")
	assert.JSONEq(t, `{"error": "movie not found", "code": 404}`, string(raw))
}

func TestDeleteMovie(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)

	code, raw := ta.do(t, http.MethodDelete, "/movies/3", "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Empty(t, raw, "204 carries no body")

	code, _ = ta.do(t, http.MethodGet, "/movies/3", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ta.do(t, http.MethodDelete, "/movies/3", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDirectorScenario(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.directors.Create(t.Context(), &models.Director{ID: 1, Name: testutil.Ptr("Director A")}))

	code, raw := ta.do(t, http.MethodPost, "/directors/", `{"id": 2, "name": "Director B"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"id": 2, "name": "Director B"}`, string(raw))

	code, raw = ta.do(t, http.MethodGet, "/directors/", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{"id": 1, "name": "Director A"}, {"id": 2, "name": "Director B"}]`, string(raw))

	code, raw = ta.do(t, http.MethodDelete, "/directors/1", "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Empty(t, raw)

	code, _ = ta.do(t, http.MethodGet, "/directors/1", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ta.do(t, http.MethodDelete, "/directors/1", "")
	assert.Equal(t, http.StatusNotFound, code, "missing delete target is 404 for every entity")
}

func TestReplaceDirectorAndGenre(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.directors.Create(t.Context(), &models.Director{ID: 1, Name: testutil.Ptr("Director A")}))
	require.NoError(t, ta.genres.Create(t.Context(), &models.Genre{ID: 1, Name: testutil.Ptr("Drama")}))

	code, raw := ta.do(t, http.MethodPut, "/directors/1", `{"name": "Director Z"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id": 1, "name": "Director Z"}`, string(raw))

	code, raw = ta.do(t, http.MethodPut, "/genres/1", `{}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id": 1, "name": null}`, string(raw))

	code, _ = ta.do(t, http.MethodPut, "/genres/2", `{"name": "Horror"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ta.do(t, http.MethodPut, "/directors/1", `{"name": 5}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGenreLifecycle(t *testing.T) {
	ta := newTestApp(t)

	code, raw := ta.do(t, http.MethodPost, "/genres/", `{"name": "Western"}`)
	require.Equal(t, http.StatusCreated, code)
	created := decode[handlers.GenreResponse](t, raw)

	code, raw = ta.do(t, http.MethodGet, "/genres/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, decode[handlers.GenreResponse](t, raw))

	code, _ = ta.do(t, http.MethodDelete, "/genres/1", "")
	assert.Equal(t, http.StatusNoContent, code)

	code, raw = ta.do(t, http.MethodGet, "/genres/", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestDeletingGenreKeepsMovieReference(t *testing.T) {
	ta := newTestApp(t)
	ta.seedMovies(t)
	require.NoError(t, ta.genres.Create(t.Context(), &models.Genre{ID: 17, Name: testutil.Ptr("Western")}))

	code, _ := ta.do(t, http.MethodDelete, "/genres/17", "")
	require.Equal(t, http.StatusNoContent, code)

	code, raw := ta.do(t, http.MethodGet, "/movies/?genre_id=17", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]handlers.MovieResponse](t, raw), 2)
}

func TestUnknownRouteUsesErrorBody(t *testing.T) {
	ta := newTestApp(t)

	code, raw := ta.do(t, http.MethodGet, "/actors/", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, decode[map[string]interface{}](t, raw), "error")
}

func TestPresignUpload(t *testing.T) {
	ta := newTestApp(t)

	code, raw := ta.do(t, http.MethodGet, "/upload/presign?filename=dune.mp4", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"presigned_url": "http://minio/put/dune.mp4", "public_url": "http://minio/trailers/dune.mp4"}`, string(raw))

	code, _ = ta.do(t, http.MethodGet, "/upload/presign", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPresignUploadFailure(t *testing.T) {
	log := testutil.NewLogger()
	app := NewApp(config.ServerConfig{}, log)
	app.Get("/presign", handlers.NewUploadHandler(stubUploader{err: errors.New("minio down")}, log).GetPresignedURL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/presign?filename=a.mp4", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestUploadRoutesAbsentWithoutStorage(t *testing.T) {
	db := testutil.NewDatabase(t)
	log := testutil.NewLogger()
	app := NewApp(config.ServerConfig{}, log)
	Setup(app, Handlers{
		Movie:    handlers.NewMovieHandler(services.NewMovieService(repository.NewMovieRepository(db), nil, log), log),
		Director: handlers.NewDirectorHandler(services.NewDirectorService(repository.NewDirectorRepository(db)), log),
		Genre:    handlers.NewGenreHandler(services.NewGenreService(repository.NewGenreRepository(db)), log),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/upload/presign?filename=a.mp4", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
