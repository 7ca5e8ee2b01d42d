// Package pricing defines the photo and video packages listed in the pricing section.
package pricing
