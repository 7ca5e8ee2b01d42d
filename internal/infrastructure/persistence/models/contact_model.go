package models

import (
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
)

// ContactModel is the GORM database model for the contact block
type ContactModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Email    string `gorm:"not null;type:varchar(255)"`
	Phone    string `gorm:"not null;type:varchar(50)"`
	Location string `gorm:"not null;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contact"
}

// ToDomain converts GORM model to domain entity
func (m *ContactModel) ToDomain() *profile.Contact {
	return &profile.Contact{
		ID:       m.ID,
		Email:    m.Email,
		Phone:    m.Phone,
		Location: m.Location,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactModel) FromDomain(c *profile.Contact) {
	m.ID = c.ID
	m.Email = c.Email
	m.Phone = c.Phone
	m.Location = c.Location
}
