// Package validators holds the shared struct validator and the custom
// validation tags used by domain entities.
package validators

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid marks errors caused by input that failed validation.
var ErrInvalid = errors.New("validation failed")

var (
	instance *validator.Validate
	once     sync.Once
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		// registration only fails on an empty tag or nil func
		_ = instance.RegisterValidation("imageext", ImageExtensionValidation)
	})
	return instance
}

// Struct validates s and reports every failing field as "Field: X, Tag: y".
// The returned error wraps ErrInvalid.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: [%s]", ErrInvalid, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
