package handlers

import "movie-catalog/internal/models"

// MovieRequest is the body of POST and PUT. Every field is written; an omitted
// field is stored as null. An "id" field is ignored.
type MovieRequest struct {
	Title       *string `json:"title" example:"Dune"`
	Description *string `json:"description" example:"A noble family becomes embroiled in a war for a desert planet."`
	Trailer     *string `json:"trailer" example:"https://www.youtube.com/watch?v=8g18jFHCLXk"`
	Year        *int    `json:"year" example:"2021"`
	Rating      *int    `json:"rating" example:"8"`
	GenreID     *uint   `json:"genre_id" example:"7"`
	DirectorID  *uint   `json:"director_id" example:"5"`
}

func (r *MovieRequest) Apply(movie *models.Movie) {
	movie.Title = r.Title
	movie.Description = r.Description
	movie.Trailer = r.Trailer
	movie.Year = r.Year
	movie.Rating = r.Rating
	movie.GenreID = r.GenreID
	movie.DirectorID = r.DirectorID
}

type MovieResponse struct {
	ID          uint    `json:"id" example:"10"`
	Title       *string `json:"title" example:"Dune"`
	Description *string `json:"description" example:"A noble family becomes embroiled in a war for a desert planet."`
	Trailer     *string `json:"trailer" example:"https://www.youtube.com/watch?v=8g18jFHCLXk"`
	Year        *int    `json:"year" example:"2021"`
	Rating      *int    `json:"rating" example:"8"`
	GenreID     *uint   `json:"genre_id" example:"7"`
	DirectorID  *uint   `json:"director_id" example:"5"`
}

func NewMovieResponse(movie *models.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Trailer:     movie.Trailer,
		Year:        movie.Year,
		Rating:      movie.Rating,
		GenreID:     movie.GenreID,
		DirectorID:  movie.DirectorID,
	}
}

func NewMovieResponses(movies []models.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, NewMovieResponse(&movies[i]))
	}
	return out
}
