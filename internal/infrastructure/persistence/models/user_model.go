package models

import (
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
)

// UserModel is the GORM database model for admin accounts
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash    string    `gorm:"not null;type:varchar(255)"`
	Role            string    `gorm:"not null;type:varchar(20)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.DateTimeCreated = u.DateTimeCreated
}

// RevokedTokenModel records a logged out session token until it would have expired
type RevokedTokenModel struct {
	TokenID   string    `gorm:"primaryKey;type:varchar(64)"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (RevokedTokenModel) TableName() string {
	return "revoked_tokens"
}

// All returns every model, in migration order
func All() []any {
	return []any{
		&PortfolioItemModel{},
		&OfferingModel{},
		&PricingPlanModel{},
		&AboutModel{},
		&ContactModel{},
		&InquiryModel{},
		&UserModel{},
		&RevokedTokenModel{},
	}
}
