// Package util holds small helpers shared by the delivery layer.
package util

import (
	"net/http"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

// allowedImageTypes are the content types accepted for product images.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// DetectImageType sniffs the content type of uploaded bytes and rejects
// anything that is not a supported image format. The client-supplied
// content type is never trusted.
func DetectImageType(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", errors.Wrapf(domainerrors.ErrValidation, "unsupported image type %q", contentType)
	}

	return contentType, nil
}
