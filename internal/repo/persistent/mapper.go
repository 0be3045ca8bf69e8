package persistent

import (
	"post-manager/internal/entity"
	"post-manager/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToMovieEntity(m *model.MovieModel) *entity.Movie {
	if m == nil {
		return nil
	}

	return &entity.Movie{
		ID:             m.ID,
		Title:          m.Title,
		Genre:          m.Genre,
		Rating:         m.Rating,
		PosterImageURL: m.PosterImageURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToMovieModel(e *entity.Movie) *model.MovieModel {
	if e == nil {
		return nil
	}

	return &model.MovieModel{
		ID:             e.ID,
		Title:          e.Title,
		Genre:          e.Genre,
		Rating:         e.Rating,
		PosterImageURL: e.PosterImageURL,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
