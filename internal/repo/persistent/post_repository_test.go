package persistent

import (
	"context"
	"testing"
	"time"

	"post-manager/internal/apperrors"
	"post-manager/internal/entity"
	"post-manager/internal/model"
	"post-manager/internal/query"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PostModel{}, &model.MovieModel{}))
	return db
}

func seedPost(t *testing.T, repo *PostRepository, name string, createdAt time.Time) *entity.Post {
	t.Helper()

	post := &entity.Post{
		Name:        name,
		Description: "Description for " + name,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func postNames(posts []*entity.Post) []string {
	names := make([]string, len(posts))
	for i, p := range posts {
		names[i] = p.Name
	}
	return names
}

func TestPostRepository_CreateAssignsID(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	post := seedPost(t, repo, "First", time.Now().UTC())
	assert.Equal(t, int64(1), post.ID)

	got, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
	assert.Equal(t, "Description for First", got.Description)
}

func TestPostRepository_GetByIDNotFound(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostRepository_SearchIsCaseInsensitive(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	now := time.Now().UTC()
	seedPost(t, repo, "Batman Returns", now)
	seedPost(t, repo, "BATMAN Begins", now.Add(time.Second))
	seedPost(t, repo, "Superman", now.Add(2*time.Second))

	posts, err := repo.List(context.Background(), query.Params{Search: "bat"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Batman Returns", "BATMAN Begins"}, postNames(posts))
}

func TestPostRepository_SortByName(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	now := time.Now().UTC()
	seedPost(t, repo, "Zebra", now)
	seedPost(t, repo, "Apple", now.Add(time.Second))
	seedPost(t, repo, "Mango", now.Add(2*time.Second))

	posts, err := repo.List(context.Background(), query.Params{Sort: "name_asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Mango", "Zebra"}, postNames(posts))

	posts, err = repo.List(context.Background(), query.Params{Sort: "name_desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Zebra", "Mango", "Apple"}, postNames(posts))
}

func TestPostRepository_UnrecognizedSortFallsBack(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	now := time.Now().UTC()
	seedPost(t, repo, "Older", now)
	seedPost(t, repo, "Newer", now.Add(time.Minute))

	// newest first is the default order
	posts, err := repo.List(context.Background(), query.Params{Sort: "bogus_token"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Newer", "Older"}, postNames(posts))
}

func TestPostRepository_Pagination(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	now := time.Now().UTC()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		seedPost(t, repo, name, now)
	}

	posts, err := repo.List(context.Background(), query.Params{Sort: "name_asc", Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, postNames(posts))

	// zero pageSize disables pagination
	posts, err = repo.List(context.Background(), query.Params{Sort: "name_asc"})
	require.NoError(t, err)
	assert.Len(t, posts, 5)
}

func TestPostRepository_UpdatePersistsClearedImage(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))
	now := time.Now().UTC()

	post := seedPost(t, repo, "With image", now)
	post.SetImageURL("https://cdn.example.com/a.jpg")
	require.NoError(t, repo.Update(context.Background(), post))

	got, err := repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Image)

	got.SetImageURL("")
	require.NoError(t, repo.Update(context.Background(), got))

	got, err = repo.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Image)
}

func TestPostRepository_Delete(t *testing.T) {
	repo := NewPostRepository(newTestDB(t))

	post := seedPost(t, repo, "Doomed", time.Now().UTC())
	require.NoError(t, repo.Delete(context.Background(), post.ID))

	_, err := repo.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), post.ID), apperrors.ErrNotFound)
}
