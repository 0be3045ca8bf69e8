package http

import (
	"fmt"
	"net/http"
	"strconv"

	"post-manager/internal/entity"
	"post-manager/internal/usecase"
	"post-manager/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	service usecase.API[*entity.Movie]
	logger  *logger.Logger
}

func NewMovieHandler(service usecase.API[*entity.Movie], logger *logger.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// ListMovies godoc
// @Summary      List movies
// @Description  Get all movies with search, genre filter, sorting, and pagination
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        search query string false "Search query (partial, case-insensitive title search)"
// @Param        genre query string false "Filter by genre (exact match, case-insensitive)"
// @Param        sort query string false "Sort order" Enums(title_asc, title_desc, rating_asc, rating_desc)
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 20, 0 disables pagination)"
// @Success      200  {array}   MovieResponse
// @Failure      500  {object}  map[string]string
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.service.List(c.Request.Context(), listParams(c, "search"))
	if err != nil {
		respondResourceError(c, h.logger, "Movie", "retrieving movies", 0, err)
		return
	}

	c.JSON(http.StatusOK, toMovieResponses(movies))
}

// GetMovie godoc
// @Summary      Get movie by ID
// @Tags         movies
// @Produce      json
// @Param        id path int true "Movie ID"
// @Success      200  {object}  MovieResponse
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	movie, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, h.logger, "Movie", "retrieving the movie", id, err)
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(movie))
}

// CreateMovie godoc
// @Summary      Create a new movie
// @Description  Create a movie with an optional poster, uploaded as a file or referenced by URL. A file wins over a URL.
// @Tags         movies
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        Title formData string true "Movie title (1-200 characters)"
// @Param        Genre formData string false "Genre (up to 100 characters)"
// @Param        Rating formData int false "Rating from 1 to 5"
// @Param        PosterImageUrl formData string false "External poster URL (alternative to file upload)"
// @Param        PosterImageFile formData file false "Poster image file (JPEG, PNG, GIF, WebP, max 5MB)"
// @Success      201  {object}  MovieResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := bindRequest(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	movie := &entity.Movie{
		Title:  req.Title,
		Genre:  req.Genre,
		Rating: req.Rating,
	}

	created, err := h.service.Create(c.Request.Context(), movie, imageSource(req.PosterImageFile, req.PosterImageURL))
	if err != nil {
		respondResourceError(c, h.logger, "Movie", "creating the movie", 0, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/movies/%d", created.ID))
	c.JSON(http.StatusCreated, toMovieResponse(created))
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  Full replace of the mutable fields. Poster precedence: uploaded file, then URL, then the existing poster is kept.
// @Tags         movies
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        id path int true "Movie ID"
// @Param        Title formData string true "Movie title (1-200 characters)"
// @Param        Genre formData string false "Genre (up to 100 characters)"
// @Param        Rating formData int false "Rating from 1 to 5"
// @Param        PosterImageUrl formData string false "External poster URL"
// @Param        PosterImageFile formData file false "Poster image file (JPEG, PNG, GIF, WebP, max 5MB)"
// @Success      200  {object}  MovieResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var req UpdateMovieRequest
	if err := bindRequest(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, func(m *entity.Movie) {
		m.Title = req.Title
		m.Genre = req.Genre
		m.Rating = req.Rating
	}, imageSource(req.PosterImageFile, req.PosterImageURL))
	if err != nil {
		respondResourceError(c, h.logger, "Movie", "updating the movie", id, err)
		return
	}

	c.JSON(http.StatusOK, toMovieResponse(updated))
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Param        id path int true "Movie ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondResourceError(c, h.logger, "Movie", "deleting the movie", id, err)
		return
	}

	c.Status(http.StatusNoContent)
}
