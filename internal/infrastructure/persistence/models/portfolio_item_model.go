package models

import (
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
)

// PortfolioItemModel is the GORM database model for gallery images
type PortfolioItemModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	ImageURL        string    `gorm:"not null;type:varchar(1024)"`
	ImagePath       string    `gorm:"type:varchar(512)"`
	AltText         string    `gorm:"not null;type:varchar(255)"`
	DisplayOrder    int       `gorm:"not null;default:0;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PortfolioItemModel) TableName() string {
	return "portfolio"
}

// ToDomain converts GORM model to domain entity
func (m *PortfolioItemModel) ToDomain() *portfolio.Item {
	return &portfolio.Item{
		ID:              m.ID,
		ImageURL:        m.ImageURL,
		ImagePath:       m.ImagePath,
		AltText:         m.AltText,
		DisplayOrder:    m.DisplayOrder,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PortfolioItemModel) FromDomain(i *portfolio.Item) {
	m.ID = i.ID
	m.ImageURL = i.ImageURL
	m.ImagePath = i.ImagePath
	m.AltText = i.AltText
	m.DisplayOrder = i.DisplayOrder
	m.DateTimeCreated = i.DateTimeCreated
}
