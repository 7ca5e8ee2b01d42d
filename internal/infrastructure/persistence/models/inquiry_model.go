package models

import (
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
)

// InquiryModel is the GORM database model for contact form messages
type InquiryModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	Email           string    `gorm:"not null;type:varchar(255)"`
	Message         string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (InquiryModel) TableName() string {
	return "inquiries"
}

// ToDomain converts GORM model to domain entity
func (m *InquiryModel) ToDomain() *inquiries.Inquiry {
	return &inquiries.Inquiry{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Message:         m.Message,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *InquiryModel) FromDomain(i *inquiries.Inquiry) {
	m.ID = i.ID
	m.Name = i.Name
	m.Email = i.Email
	m.Message = i.Message
	m.DateTimeCreated = i.DateTimeCreated
}
