// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store the site's content tables, admin
// accounts and revoked session tokens. Repositories validate entities before
// writing and report missing rows with domain.ErrNotFound.
package persistence
