package models

import (
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
)

// OfferingModel is the GORM database model for the services section
type OfferingModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Title        string    `gorm:"not null;type:varchar(255)"`
	Description  string    `gorm:"not null;type:text"`
	ImageURL     string    `gorm:"type:varchar(1024)"`
	ImagePath    string    `gorm:"type:varchar(512)"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (OfferingModel) TableName() string {
	return "services"
}

// ToDomain converts GORM model to domain entity
func (m *OfferingModel) ToDomain() *offerings.Offering {
	return &offerings.Offering{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		ImagePath:    m.ImagePath,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OfferingModel) FromDomain(o *offerings.Offering) {
	m.ID = o.ID
	m.Title = o.Title
	m.Description = o.Description
	m.ImageURL = o.ImageURL
	m.ImagePath = o.ImagePath
	m.DisplayOrder = o.DisplayOrder
}
