package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahmiks/portfolio-api/internal/server/assets"
)

// formUpload reads the named multipart file into an assets.Upload. A missing
// file returns (nil, nil) so optional uploads fall through cleanly. Reading
// is capped just past the size limit; validation rejects the oversize result.
func formUpload(c *gin.Context, field string) (*assets.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading form file %q: %w", field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening form file %q: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, assets.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading form file %q: %w", field, err)
	}

	return &assets.Upload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}
