package v1

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// InfoResponse carries a confirmation message
type InfoResponse struct {
	Message *string `json:"message,omitempty"`
}

func newErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: &message}
}

func newInfoResponse(message string) InfoResponse {
	return InfoResponse{Message: &message}
}

// LoginRequest is the admin sign-in form
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("invalid login request: %w", err)
	}
	return nil
}

// UserResponse describes the signed-in account
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse is returned on login
type SessionResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func newUserResponse(u *users.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: u.Role}
}

// PortfolioItemResponse is one gallery image
type PortfolioItemResponse struct {
	ID              string    `json:"id"`
	ImageURL        string    `json:"image_url"`
	AltText         string    `json:"alt_text"`
	DisplayOrder    int       `json:"display_order"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newPortfolioItemResponse(i *portfolio.Item) PortfolioItemResponse {
	return PortfolioItemResponse{
		ID:              i.ID,
		ImageURL:        i.ImageURL,
		AltText:         i.AltText,
		DisplayOrder:    i.DisplayOrder,
		DateTimeCreated: i.DateTimeCreated,
	}
}

// UpdatePortfolioItemRequest edits the alt text or position of an item
type UpdatePortfolioItemRequest struct {
	AltText      *string `json:"alt_text" validate:"omitempty,min=1,max=255"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

// Validate for validating UpdatePortfolioItemRequest struct
func (r *UpdatePortfolioItemRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("invalid portfolio item: %w", err)
	}
	return nil
}

// OfferingResponse is one card of the services section
type OfferingResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

func newOfferingResponse(o *offerings.Offering) OfferingResponse {
	return OfferingResponse{
		ID:           o.ID,
		Title:        o.Title,
		Description:  o.Description,
		ImageURL:     o.ImageURL,
		DisplayOrder: o.DisplayOrder,
	}
}

// PricingPlanRequest creates or replaces a pricing plan. Features may be sent
// as a list or as newline separated text.
type PricingPlanRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Description  string   `json:"description" validate:"required,max=1000"`
	Price        string   `json:"price" validate:"required,max=50"`
	PriceNote    string   `json:"price_note" validate:"max=255"`
	Features     []string `json:"features"`
	FeaturesText string   `json:"features_text"`
	Category     string   `json:"category" validate:"omitempty,oneof=wedding video"`
	Popular      bool     `json:"popular"`
	Notes        string   `json:"notes" validate:"max=2000"`
	DisplayOrder *int     `json:"display_order" validate:"omitempty,gte=0"`
}

// Validate for validating PricingPlanRequest struct
func (r *PricingPlanRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("invalid pricing plan: %w", err)
	}
	return nil
}

// ToInput converts the request to the domain form
func (r *PricingPlanRequest) ToInput() pricing.PlanInput {
	return pricing.PlanInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		PriceNote:    r.PriceNote,
		Features:     r.Features,
		FeaturesText: r.FeaturesText,
		Category:     r.Category,
		Popular:      r.Popular,
		Notes:        r.Notes,
		DisplayOrder: r.DisplayOrder,
	}
}

// PricingPlanResponse is one pricing card
type PricingPlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        string   `json:"price"`
	PriceNote    *string  `json:"price_note"`
	Features     []string `json:"features"`
	Category     string   `json:"category"`
	Popular      bool     `json:"popular"`
	Notes        *string  `json:"notes"`
	DisplayOrder int      `json:"display_order"`
}

func newPricingPlanResponse(p *pricing.Plan) PricingPlanResponse {
	return PricingPlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		PriceNote:    p.PriceNote,
		Features:     p.Features,
		Category:     p.Category,
		Popular:      p.Popular,
		Notes:        p.Notes,
		DisplayOrder: p.DisplayOrder,
	}
}

// PricingGroupResponse holds the plans of one category
type PricingGroupResponse struct {
	Category string                `json:"category"`
	Plans    []PricingPlanResponse `json:"plans"`
}

// AboutResponse is the about section
type AboutResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	Bio              string `json:"bio"`
	YearsExperience  int    `json:"years_experience"`
	HappyClients     int    `json:"happy_clients"`
	Awards           int    `json:"awards"`
	Projects         int    `json:"projects"`
	PortraitImageURL string `json:"portrait_image_url"`
	WorkingImageURL  string `json:"working_image_url"`
}

func newAboutResponse(a *profile.About) AboutResponse {
	return AboutResponse{
		ID:               a.ID,
		Title:            a.Title,
		Subtitle:         a.Subtitle,
		Bio:              a.Bio,
		YearsExperience:  a.YearsExperience,
		HappyClients:     a.HappyClients,
		Awards:           a.Awards,
		Projects:         a.Projects,
		PortraitImageURL: a.PortraitImageURL,
		WorkingImageURL:  a.WorkingImageURL,
	}
}

// ContactRequest replaces the contact block
type ContactRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,max=50"`
	Location string `json:"location" validate:"required,max=255"`
}

// Validate for validating ContactRequest struct
func (r *ContactRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("invalid contact information: %w", err)
	}
	return nil
}

// ContactResponse is the contact block
type ContactResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

func newContactResponse(c *profile.Contact) ContactResponse {
	return ContactResponse{ID: c.ID, Email: c.Email, Phone: c.Phone, Location: c.Location}
}

// InquiryRequest is the public contact form
type InquiryRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Email   string `json:"email" form:"email" validate:"required,email,max=255"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Validate for validating InquiryRequest struct
func (r *InquiryRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	return nil
}

// InquiryResponse is a stored contact form message
type InquiryResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Message         string    `json:"message"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newInquiryResponse(i *inquiries.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:              i.ID,
		Name:            i.Name,
		Email:           i.Email,
		Message:         i.Message,
		DateTimeCreated: i.DateTimeCreated,
	}
}

// HeroResponse is the landing banner
type HeroResponse struct {
	SiteName    string `json:"site_name"`
	ImageURL    string `json:"image_url,omitempty"`
	CopyrightBy string `json:"copyright_by,omitempty"`
}

// ContentResponse is the whole public site
type ContentResponse struct {
	Hero      HeroResponse            `json:"hero"`
	Services  []OfferingResponse      `json:"services"`
	Pricing   []PricingGroupResponse  `json:"pricing"`
	Portfolio []PortfolioItemResponse `json:"portfolio"`
	About     *AboutResponse          `json:"about"`
	Contact   *ContactResponse        `json:"contact"`
}

func newContentResponse(c *site.Content) ContentResponse {
	resp := ContentResponse{
		Hero: HeroResponse{
			SiteName:    c.Hero.SiteName,
			ImageURL:    c.Hero.ImageURL,
			CopyrightBy: c.Hero.CopyrightBy,
		},
		Services:  mapSlice(c.Offerings, newOfferingResponse),
		Pricing:   make([]PricingGroupResponse, 0, len(c.Pricing)),
		Portfolio: mapSlice(c.Portfolio, newPortfolioItemResponse),
	}

	for _, g := range c.Pricing {
		resp.Pricing = append(resp.Pricing, PricingGroupResponse{
			Category: g.Category,
			Plans:    mapSlice(g.Plans, newPricingPlanResponse),
		})
	}

	if c.About != nil {
		about := newAboutResponse(c.About)
		resp.About = &about
	}
	if c.Contact != nil {
		contact := newContactResponse(c.Contact)
		resp.Contact = &contact
	}
	return resp
}

// mapSlice converts every element; the result is never nil so lists encode as []
func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
