package admin

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/smilesofhope/hopecms/internal/apperr"
)

// MaxUploadBytes is the per-file ceiling for embedded uploads. Larger files
// are rejected outright rather than truncated.
const MaxUploadBytes = 15 << 20 // 15 MB

// EncodeDataURI reads a file and returns it as an embeddable data URI.
// contentType is sniffed from the leading bytes when empty. Files over
// MaxUploadBytes yield apperr.ErrFileTooLarge and no partial result.
func EncodeDataURI(r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("admin: read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return "", apperr.ErrFileTooLarge
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
