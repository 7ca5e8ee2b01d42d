package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/httputil"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// StatusFor maps a service error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, validators.ErrInvalid), errors.Is(err, httputil.ErrFileTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrInvalidCredentials), errors.Is(err, users.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, users.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError answers with message. Bad requests also carry the validation
// detail; store failures never leak it.
func abortWithError(ctx *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusBadRequest {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, newErrorResponse(message))
}

// invalid marks a request decoding failure as a validation error
func invalid(err error) error {
	return fmt.Errorf("%v: %w", err, validators.ErrInvalid)
}
