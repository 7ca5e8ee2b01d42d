package validators

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ImageExtensions lists the file extensions accepted for site images.
var ImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".avif": {},
}

// ImageExtensionValidation validates that a file name carries a known image extension.
func ImageExtensionValidation(fl validator.FieldLevel) bool {
	ext := strings.ToLower(filepath.Ext(fl.Field().String()))
	_, ok := ImageExtensions[ext]
	return ok
}
