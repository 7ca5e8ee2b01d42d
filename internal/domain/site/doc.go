// Package site assembles every section of the one-page public site.
package site
