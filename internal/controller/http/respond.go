package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"post-manager/internal/apperrors"
	"post-manager/internal/imageres"
	"post-manager/internal/query"
	"post-manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidatorTagNames makes validation errors report the wire field
// names (form tags) instead of Go struct field names.
func RegisterValidatorTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	}
}

// bindRequest picks the binding by content type: multipart carries the
// form fields plus optional file, everything else is treated as JSON.
func bindRequest(c *gin.Context, req interface{}) error {
	if c.ContentType() == "multipart/form-data" {
		return c.ShouldBindWith(req, binding.FormMultipart)
	}
	return c.ShouldBindJSON(req)
}

// imageSource folds the file/URL request duality into a single tagged
// source. A file always wins; nil means neither was supplied.
func imageSource(file *multipart.FileHeader, url string) imageres.Source {
	if file != nil {
		return imageres.FileSource{Header: file}
	}
	if strings.TrimSpace(url) != "" {
		return imageres.URLSource{URL: url}
	}
	return nil
}

// listParams parses the optional query parameters. Invalid numbers fall
// back to the defaults; explicit non-positive values disable pagination.
func listParams(c *gin.Context, searchParam string) query.Params {
	params := query.Params{
		Search:   c.Query(searchParam),
		Filter:   c.Query("genre"),
		Sort:     c.Query("sort"),
		Page:     query.DefaultPage,
		PageSize: query.DefaultPageSize,
	}

	if s := c.Query("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			params.Page = v
		}
	}
	if s := c.Query("pageSize"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			params.PageSize = v
		}
	}

	return params
}

// Messages mirror the wording clients already rely on.
var rangeMessages = map[string]string{
	"Name":           "Name must be between 3 and 200 characters",
	"Description":    "Description must be between 10 and 2000 characters",
	"ImageUrl":       "Image URL cannot exceed 500 characters",
	"Title":          "Title must be between 1 and 200 characters",
	"Genre":          "Genre cannot exceed 100 characters",
	"Rating":         "Rating must be between 1 and 5",
	"PosterImageUrl": "Poster image URL cannot exceed 500 characters",
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", fe.Field())
	}
	if msg, ok := rangeMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// respondBindingError turns validator failures into the field-keyed 400
// shape; malformed bodies get a generic message instead.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], validationMessage(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}

// respondResourceError maps service errors onto the API's error shapes.
// Validation outcomes are client faults and are not logged as errors.
func respondResourceError(c *gin.Context, log *logger.Logger, kind, op string, id int64, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s with ID %d not found", kind, id)})
	case errors.Is(err, apperrors.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image file. File must be JPEG, PNG, GIF, or WebP and under 5MB."})
	default:
		if id > 0 {
			log.Error("Error %s %d: %v", op, id, err)
		} else {
			log.Error("Error %s: %v", op, err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("An error occurred while %s", op)})
	}
}
