package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Asset-host (object storage) errors
var (
	ErrAssetUpload  = errors.New("asset upload failed")
	ErrAssetDelete  = errors.New("asset delete failed")
	ErrBadLocator   = errors.New("unrecognized asset locator")
	ErrFileTooLarge = errors.New("file too large")
)

func NewAssetUploadError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrAssetUpload,
		Details:    fmt.Sprintf("Failed to upload asset %s", key),
		Cause:      cause,
	}
}

func NewAssetDeleteError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrAssetDelete,
		Details:    fmt.Sprintf("Failed to delete asset %s", key),
		Cause:      cause,
	}
}

func NewBadLocatorError(locator string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadLocator,
		Details:    fmt.Sprintf("Locator %q does not belong to the configured asset host", locator),
		Field:      "locator",
	}
}

func NewFileTooLargeError(maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("File exceeds maximum allowed size of %d bytes", maxSize),
		Field:      "file",
	}
}

func IsAssetUploadError(err error) bool {
	return errors.Is(err, ErrAssetUpload)
}

func IsAssetDeleteError(err error) bool {
	return errors.Is(err, ErrAssetDelete)
}
