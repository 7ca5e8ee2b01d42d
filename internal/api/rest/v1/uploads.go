package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/httputil"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// formImage opens the image sent in field. A missing optional file yields a
// nil upload. The returned func closes the file and is always safe to call.
func formImage(ctx *gin.Context, field string, limit int64, required bool) (*images.Upload, func(), error) {
	noop := func() {}

	header, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		if required {
			return nil, noop, fmt.Errorf("%s is required: %w", field, validators.ErrInvalid)
		}
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, invalid(err)
	}

	file, err := httputil.OpenFormFile(header, limit)
	if err != nil {
		return nil, noop, err
	}

	upload := &images.Upload{
		FileName:    file.FileName,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Reader,
	}
	return upload, func() { _ = file.Close() }, nil
}

// formInt parses an optional integer form field
func formInt(ctx *gin.Context, field string) (*int, error) {
	raw := strings.TrimSpace(ctx.PostForm(field))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%s must be a non-negative integer: %w", field, validators.ErrInvalid)
	}
	return &v, nil
}

// formCount parses an integer form field that defaults to 0
func formCount(ctx *gin.Context, field string) (int, error) {
	v, err := formInt(ctx, field)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}
