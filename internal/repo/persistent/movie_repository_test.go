package persistent

import (
	"context"
	"testing"
	"time"

	"post-manager/internal/entity"
	"post-manager/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovie(t *testing.T, repo *MovieRepository, title string, genre *string, rating *int, createdAt time.Time) *entity.Movie {
	t.Helper()

	movie := &entity.Movie{
		Title:     title,
		Genre:     genre,
		Rating:    rating,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), movie))
	return movie
}

func movieTitles(movies []*entity.Movie) []string {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	return titles
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMovieRepository_GenreFilterIsCaseInsensitive(t *testing.T) {
	repo := NewMovieRepository(newTestDB(t))
	now := time.Now().UTC()
	seedMovie(t, repo, "Alien", strPtr("Sci-Fi"), intPtr(5), now)
	seedMovie(t, repo, "Arrival", strPtr("SCI-FI"), intPtr(4), now.Add(time.Second))
	seedMovie(t, repo, "Heat", strPtr("Crime"), intPtr(5), now.Add(2*time.Second))
	seedMovie(t, repo, "Untitled", nil, nil, now.Add(3*time.Second))

	movies, err := repo.List(context.Background(), query.Params{Filter: "sci-fi"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Alien", "Arrival"}, movieTitles(movies))
}

func TestMovieRepository_GenreFilterIsExactMatch(t *testing.T) {
	repo := NewMovieRepository(newTestDB(t))
	now := time.Now().UTC()
	seedMovie(t, repo, "Alien", strPtr("Sci-Fi"), intPtr(5), now)
	seedMovie(t, repo, "Scary Movie", strPtr("Sci-Fi Comedy"), intPtr(2), now.Add(time.Second))

	movies, err := repo.List(context.Background(), query.Params{Filter: "Sci-Fi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien"}, movieTitles(movies))
}

func TestMovieRepository_SearchAndFilterCompose(t *testing.T) {
	repo := NewMovieRepository(newTestDB(t))
	now := time.Now().UTC()
	seedMovie(t, repo, "The Matrix", strPtr("Sci-Fi"), intPtr(5), now)
	seedMovie(t, repo, "The Matrix Reloaded", strPtr("Sci-Fi"), intPtr(3), now.Add(time.Second))
	seedMovie(t, repo, "The Godfather", strPtr("Crime"), intPtr(5), now.Add(2*time.Second))

	movies, err := repo.List(context.Background(), query.Params{Search: "matrix", Filter: "sci-fi", Sort: "rating_desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix", "The Matrix Reloaded"}, movieTitles(movies))
}

func TestMovieRepository_RatingSortTreatsNullAsZero(t *testing.T) {
	repo := NewMovieRepository(newTestDB(t))
	now := time.Now().UTC()
	seedMovie(t, repo, "Rated High", nil, intPtr(5), now)
	seedMovie(t, repo, "Unrated", nil, nil, now.Add(time.Second))
	seedMovie(t, repo, "Rated Low", nil, intPtr(1), now.Add(2*time.Second))

	movies, err := repo.List(context.Background(), query.Params{Sort: "rating_asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Unrated", "Rated Low", "Rated High"}, movieTitles(movies))

	movies, err = repo.List(context.Background(), query.Params{Sort: "rating_desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rated High", "Rated Low", "Unrated"}, movieTitles(movies))
}

func TestMovieRepository_UpdateClearsOptionalFields(t *testing.T) {
	repo := NewMovieRepository(newTestDB(t))
	now := time.Now().UTC()

	movie := seedMovie(t, repo, "Editable", strPtr("Drama"), intPtr(4), now)
	movie.Genre = nil
	movie.Rating = nil
	require.NoError(t, repo.Update(context.Background(), movie))

	got, err := repo.GetByID(context.Background(), movie.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Genre)
	assert.Nil(t, got.Rating)
	assert.Equal(t, "Editable", got.Title)
}
