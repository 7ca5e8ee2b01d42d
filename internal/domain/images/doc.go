// Package images defines how site images are uploaded to and removed from
// the object store backing the portfolio, services and about sections.
package images
