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

// PostQuerySpec wires the posts table into the query pipeline.
var PostQuerySpec = query.Spec{
	SearchColumn: "name",
	SortKeys: map[string]string{
		"name_asc":  "name ASC",
		"name_desc": "name DESC",
	},
	DefaultOrder: "created_at DESC",
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) List(ctx context.Context, params query.Params) ([]*entity.Post, error) {
	var postModels []model.PostModel
	db := PostQuerySpec.Apply(r.db.WithContext(ctx).Model(&model.PostModel{}), params)
	if err := db.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).First(&postModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *PostRepository) Update(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	// Save writes every column so cleared optional fields are persisted
	return r.db.WithContext(ctx).Save(postModel).Error
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
