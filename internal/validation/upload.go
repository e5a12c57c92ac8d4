package validation

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
)

var (
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidMimeType = errors.New("unsupported file type")
	ErrEmptyPayload    = errors.New("empty payload")
)

// ValidateUpload checks a raw uploaded body against the configured size cap
// and allowed MIME types. The MIME type is sniffed from content, never taken
// from headers. Returns the detected MIME type.
func ValidateUpload(data []byte, allowedMimes []string, maxBytes int64) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPayloadTooLarge, len(data), maxBytes)
	}

	mimeType := http.DetectContentType(data)

	allowed := BuildAllowedMimeMap(allowedMimes)
	if !allowed[mimeType] {
		return "", fmt.Errorf("%w: %s", ErrInvalidMimeType, mimeType)
	}

	return mimeType, nil
}

func BuildAllowedMimeMap(mimes []string) map[string]bool {
	allowed := make(map[string]bool)
	for _, m := range mimes {
		allowed[m] = true
	}
	return allowed
}

// ExtractImageDimensions decodes just the image header. Returns nils when the
// payload is not a decodable image (not a fatal condition).
func ExtractImageDimensions(data []byte, mimeType string) (*int, *int) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}

	width, height := cfg.Width, cfg.Height
	return &width, &height
}
