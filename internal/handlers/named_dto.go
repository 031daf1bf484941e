package handlers

import "movie-catalog/internal/models"

type DirectorRequest struct {
	Name *string `json:"name" example:"Denis Villeneuve"`
}

type GenreRequest struct {
	Name *string `json:"name" example:"Science Fiction"`
}

type DirectorResponse struct {
	ID   uint    `json:"id" example:"5"`
	Name *string `json:"name" example:"Denis Villeneuve"`
}

type GenreResponse struct {
	ID   uint    `json:"id" example:"7"`
	Name *string `json:"name" example:"Science Fiction"`
}

// Apply overwrites every writable field; the id is left alone.
func (r *DirectorRequest) Apply(director *models.Director) {
	director.Name = r.Name
}

func (r *GenreRequest) Apply(genre *models.Genre) {
	genre.Name = r.Name
}

func NewDirectorResponse(director *models.Director) DirectorResponse {
	return DirectorResponse{ID: director.ID, Name: director.Name}
}

func NewDirectorResponses(directors []models.Director) []DirectorResponse {
	out := make([]DirectorResponse, 0, len(directors))
	for i := range directors {
		out = append(out, NewDirectorResponse(&directors[i]))
	}
	return out
}

func NewGenreResponse(genre *models.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}

func NewGenreResponses(genres []models.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for i := range genres {
		out = append(out, NewGenreResponse(&genres[i]))
	}
	return out
}
