package models

import (
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
)

// PricingPlanModel is the GORM database model for pricing plans.
// Features are stored as a JSON array.
type PricingPlanModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Name         string    `gorm:"not null;type:varchar(255)"`
	Description  string    `gorm:"not null;type:text"`
	Price        string    `gorm:"not null;type:varchar(50)"`
	PriceNote    *string   `gorm:"type:varchar(255)"`
	Features     []string  `gorm:"not null;type:text;serializer:json"`
	Category     string    `gorm:"not null;type:varchar(20);index"`
	Popular      bool      `gorm:"not null;default:false"`
	Notes        *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (PricingPlanModel) TableName() string {
	return "pricing"
}

// ToDomain converts GORM model to domain entity
func (m *PricingPlanModel) ToDomain() *pricing.Plan {
	features := make([]string, len(m.Features))
	copy(features, m.Features)

	return &pricing.Plan{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		PriceNote:    m.PriceNote,
		Features:     features,
		Category:     m.Category,
		Popular:      m.Popular,
		Notes:        m.Notes,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PricingPlanModel) FromDomain(p *pricing.Plan) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.PriceNote = p.PriceNote
	m.Features = p.Features
	m.Category = p.Category
	m.Popular = p.Popular
	m.Notes = p.Notes
	m.DisplayOrder = p.DisplayOrder
}
