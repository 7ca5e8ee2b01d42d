package models

import (
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
)

// AboutModel is the GORM database model for the about section
type AboutModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	Title             string `gorm:"not null;type:varchar(255)"`
	Subtitle          string `gorm:"not null;type:varchar(255)"`
	Bio               string `gorm:"not null;type:text"`
	YearsExperience   int    `gorm:"not null;default:0"`
	HappyClients      int    `gorm:"not null;default:0"`
	Awards            int    `gorm:"not null;default:0"`
	Projects          int    `gorm:"not null;default:0"`
	PortraitImageURL  string `gorm:"not null;type:varchar(1024)"`
	PortraitImagePath string `gorm:"type:varchar(512)"`
	WorkingImageURL   string `gorm:"not null;type:varchar(1024)"`
	WorkingImagePath  string `gorm:"type:varchar(512)"`
}

// TableName specifies the table name for GORM
func (AboutModel) TableName() string {
	return "about"
}

// ToDomain converts GORM model to domain entity
func (m *AboutModel) ToDomain() *profile.About {
	return &profile.About{
		ID:                m.ID,
		Title:             m.Title,
		Subtitle:          m.Subtitle,
		Bio:               m.Bio,
		YearsExperience:   m.YearsExperience,
		HappyClients:      m.HappyClients,
		Awards:            m.Awards,
		Projects:          m.Projects,
		PortraitImageURL:  m.PortraitImageURL,
		PortraitImagePath: m.PortraitImagePath,
		WorkingImageURL:   m.WorkingImageURL,
		WorkingImagePath:  m.WorkingImagePath,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AboutModel) FromDomain(a *profile.About) {
	m.ID = a.ID
	m.Title = a.Title
	m.Subtitle = a.Subtitle
	m.Bio = a.Bio
	m.YearsExperience = a.YearsExperience
	m.HappyClients = a.HappyClients
	m.Awards = a.Awards
	m.Projects = a.Projects
	m.PortraitImageURL = a.PortraitImageURL
	m.PortraitImagePath = a.PortraitImagePath
	m.WorkingImageURL = a.WorkingImageURL
	m.WorkingImagePath = a.WorkingImagePath
}
