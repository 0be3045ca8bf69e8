package apperrors

import "errors"

var (
	// ErrNotFound means the requested record id has no match in the store.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidImage means an uploaded file failed image validation
	// (empty, too large, or disallowed content type).
	ErrInvalidImage = errors.New("invalid image file")

	// ErrUploadFailed means the upload sink rejected or failed the upload.
	ErrUploadFailed = errors.New("image upload failed")
)
