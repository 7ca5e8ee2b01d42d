// Package models contains GORM database models for the infrastructure layer.
// They mirror the site's content tables and are converted to and from domain
// entities with ToDomain and FromDomain.
package models
