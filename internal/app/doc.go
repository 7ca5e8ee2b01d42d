// Package app implements the domain services on top of the repositories and
// the image connector.
package app
