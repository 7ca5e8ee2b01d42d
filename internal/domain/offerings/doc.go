// Package offerings defines the photography services presented as cards in
// the services section (stored in the "services" table).
package offerings
