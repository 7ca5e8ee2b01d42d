// Package domain holds the errors shared by the content, image and user domains.
package domain
