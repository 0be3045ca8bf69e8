package http

import (
	"mime/multipart"
	"time"

	"post-manager/internal/entity"
)

// Request DTOs bind both multipart/form-data (PascalCase field names, as
// the web client submits them) and JSON. File fields only exist in
// multipart bodies.

type CreatePostRequest struct {
	Name        string                `form:"Name" json:"Name" binding:"required,min=3,max=200"`
	Description string                `form:"Description" json:"Description" binding:"required,min=10,max=2000"`
	ImageURL    string                `form:"ImageUrl" json:"ImageUrl" binding:"omitempty,max=500"`
	ImageFile   *multipart.FileHeader `form:"ImageFile" json:"-"`
}

type CreateMovieRequest struct {
	Title           string                `form:"Title" json:"Title" binding:"required,min=1,max=200"`
	Genre           *string               `form:"Genre" json:"Genre" binding:"omitempty,max=100"`
	Rating          *int                  `form:"Rating" json:"Rating" binding:"omitempty,min=1,max=5"`
	PosterImageURL  string                `form:"PosterImageUrl" json:"PosterImageUrl" binding:"omitempty,max=500"`
	PosterImageFile *multipart.FileHeader `form:"PosterImageFile" json:"-"`
}

// Updates are full replaces of the mutable fields, so they reuse the
// create shapes.

type UpdatePostRequest = CreatePostRequest

type UpdateMovieRequest = CreateMovieRequest

// Response DTOs are the camelCase wire shape of an entity.

type PostResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MovieResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Genre          *string   `json:"genre"`
	Rating         *int      `json:"rating"`
	PosterImageURL *string   `json:"posterImageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toPostResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, p := range posts {
		responses[i] = toPostResponse(p)
	}
	return responses
}

func toMovieResponse(m *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:             m.ID,
		Title:          m.Title,
		Genre:          m.Genre,
		Rating:         m.Rating,
		PosterImageURL: m.PosterImageURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMovieResponses(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, m := range movies {
		responses[i] = toMovieResponse(m)
	}
	return responses
}
