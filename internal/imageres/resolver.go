// Package imageres resolves the image field for a write request from one
// of three sources: an uploaded file, an external URL, or the record's
// existing value. An uploaded file always wins over a URL.
package imageres

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"post-manager/internal/apperrors"
	"post-manager/pkg/logger"

	"github.com/google/uuid"
)

// MaxFileSize is the upload limit: 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Source is the tagged union of image inputs for a write operation.
// A nil Source means the caller supplied neither a file nor a URL.
type Source interface {
	isSource()
}

type FileSource struct {
	Header *multipart.FileHeader
}

type URLSource struct {
	URL string
}

func (FileSource) isSource() {}
func (URLSource) isSource()  {}

// Uploader is the external sink the resolver streams valid files to.
type Uploader interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
}

type Resolver struct {
	uploader            Uploader // nil when the sink is unconfigured
	placeholderFallback bool
	timeout             time.Duration
	log                 *logger.Logger
}

func NewResolver(uploader Uploader, placeholderFallback bool, timeout time.Duration, log *logger.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Resolver{
		uploader:            uploader,
		placeholderFallback: placeholderFallback,
		timeout:             timeout,
		log:                 log,
	}
}

// Validate checks the declared size and content type of an uploaded file.
func (r *Resolver) Validate(file *multipart.FileHeader) error {
	if file == nil || file.Size == 0 {
		return fmt.Errorf("%w: file is empty", apperrors.ErrInvalidImage)
	}

	if file.Size > MaxFileSize {
		return fmt.Errorf("%w: file size %d exceeds maximum %d", apperrors.ErrInvalidImage, file.Size, MaxFileSize)
	}

	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if !allowedMimeTypes[contentType] {
		return fmt.Errorf("%w: content type %q is not allowed", apperrors.ErrInvalidImage, contentType)
	}

	return nil
}

// Resolve produces the canonical image URL for a write given the request
// source and the record's existing value. Precedence: file > URL > existing.
func (r *Resolver) Resolve(ctx context.Context, src Source, existing string) (string, error) {
	switch s := src.(type) {
	case FileSource:
		if err := r.Validate(s.Header); err != nil {
			return "", err
		}
		return r.upload(ctx, s.Header)
	case URLSource:
		if url := strings.TrimSpace(s.URL); url != "" {
			return url, nil
		}
		return existing, nil
	default:
		return existing, nil
	}
}

func (r *Resolver) upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if r.uploader == nil {
		if r.placeholderFallback {
			r.log.Warn("Upload sink not configured, returning placeholder URL for %s", file.Filename)
			return PlaceholderURL(file.Filename), nil
		}
		return "", fmt.Errorf("%w: upload sink is not configured", apperrors.ErrUploadFailed)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: failed to open file: %v", apperrors.ErrUploadFailed, err)
	}
	defer src.Close()

	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(file.Filename)))
	contentType := file.Header.Get("Content-Type")

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	uploadedURL, err := r.uploader.UploadFile(ctx, key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	r.log.Info("Image uploaded: %s", uploadedURL)
	return uploadedURL, nil
}

// PlaceholderURL is the deterministic stand-in used when the sink is
// unconfigured and the fallback flag is on.
func PlaceholderURL(filename string) string {
	return "https://via.placeholder.com/800x600?text=" + url.QueryEscape(filename)
}
