// Package web renders the public one-page site and accepts its contact form.
package web
