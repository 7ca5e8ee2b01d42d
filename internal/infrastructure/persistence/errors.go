package persistence

import (
	"fmt"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
)

func notFoundError(kind, id string) error {
	return fmt.Errorf("%s with ID %s: %w", kind, id, domain.ErrNotFound)
}
