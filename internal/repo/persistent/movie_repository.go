package persistent

import (
	"context"
	"errors"

	"post-manager/internal/apperrors"
	"post-manager/internal/entity"
	"post-manager/internal/model"
	"post-manager/internal/query"

	"gorm.io/gorm"
)

// MovieQuerySpec wires the movies table into the query pipeline. A NULL
// rating sorts as 0.
var MovieQuerySpec = query.Spec{
	SearchColumn: "title",
	FilterColumn: "genre",
	SortKeys: map[string]string{
		"title_asc":   "title ASC",
		"title_desc":  "title DESC",
		"rating_asc":  "COALESCE(rating, 0) ASC",
		"rating_desc": "COALESCE(rating, 0) DESC",
	},
	DefaultOrder: "created_at DESC",
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) List(ctx context.Context, params query.Params) ([]*entity.Movie, error) {
	var movieModels []model.MovieModel
	db := MovieQuerySpec.Apply(r.db.WithContext(ctx).Model(&model.MovieModel{}), params)
	if err := db.Find(&movieModels).Error; err != nil {
		return nil, err
	}

	movies := make([]*entity.Movie, len(movieModels))
	for i := range movieModels {
		movies[i] = ToMovieEntity(&movieModels[i])
	}
	return movies, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*entity.Movie, error) {
	var movieModel model.MovieModel
	if err := r.db.WithContext(ctx).First(&movieModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return ToMovieEntity(&movieModel), nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	movieModel := ToMovieModel(movie)
	if err := r.db.WithContext(ctx).Create(movieModel).Error; err != nil {
		return err
	}
	*movie = *ToMovieEntity(movieModel)
	return nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	movieModel := ToMovieModel(movie)
	return r.db.WithContext(ctx).Save(movieModel).Error
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.MovieModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
