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

type PostHandler struct {
	service usecase.API[*entity.Post]
	logger  *logger.Logger
}

func NewPostHandler(service usecase.API[*entity.Post], logger *logger.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		logger:  logger,
	}
}

// ListPosts godoc
// @Summary      List posts
// @Description  Get all posts with optional search, sorting, and pagination
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        q query string false "Search query (partial, case-insensitive name search)"
// @Param        sort query string false "Sort order" Enums(name_asc, name_desc)
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 20, 0 disables pagination)"
// @Success      200  {array}   PostResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context(), listParams(c, "q"))
	if err != nil {
		respondResourceError(c, h.logger, "Post", "retrieving posts", 0, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponses(posts))
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondResourceError(c, h.logger, "Post", "retrieving the post", id, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post))
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with an optional image, uploaded as a file or referenced by URL. A file wins over a URL.
// @Tags         posts
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        Name formData string true "Post name (3-200 characters)"
// @Param        Description formData string true "Post description (10-2000 characters)"
// @Param        ImageUrl formData string false "External image URL (alternative to file upload)"
// @Param        ImageFile formData file false "Image file (JPEG, PNG, GIF, WebP, max 5MB)"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := bindRequest(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	post := &entity.Post{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := h.service.Create(c.Request.Context(), post, imageSource(req.ImageFile, req.ImageURL))
	if err != nil {
		respondResourceError(c, h.logger, "Post", "creating the post", 0, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/posts/%d", created.ID))
	c.JSON(http.StatusCreated, toPostResponse(created))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Full replace of the mutable fields. Image precedence: uploaded file, then URL, then the existing image is kept.
// @Tags         posts
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        id path int true "Post ID"
// @Param        Name formData string true "Post name (3-200 characters)"
// @Param        Description formData string true "Post description (10-2000 characters)"
// @Param        ImageUrl formData string false "External image URL"
// @Param        ImageFile formData file false "Image file (JPEG, PNG, GIF, WebP, max 5MB)"
// @Success      200  {object}  PostResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var req UpdatePostRequest
	if err := bindRequest(c, &req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, func(p *entity.Post) {
		p.Name = req.Name
		p.Description = req.Description
	}, imageSource(req.ImageFile, req.ImageURL))
	if err != nil {
		respondResourceError(c, h.logger, "Post", "updating the post", id, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(updated))
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondResourceError(c, h.logger, "Post", "deleting the post", id, err)
		return
	}

	c.Status(http.StatusNoContent)
}
