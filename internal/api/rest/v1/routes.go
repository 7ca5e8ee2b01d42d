package v1

import (
	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Services bundles what the version 1 handlers depend on
type Services struct {
	Auth      users.AuthService
	Content   site.ContentService
	Portfolio portfolio.ItemService
	Offerings offerings.OfferingService
	Pricing   pricing.PlanService
	About     profile.AboutService
	Contact   profile.ContactService
	Inquiries inquiries.InquiryService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services Services, uploadLimit int64) {
	v1 := r.Group(BasePath) // lookup in version file

	authHandler := NewAuthHandler(services.Auth)
	siteHandler := NewSiteHandler(services.Content)
	portfolioHandler := NewPortfolioHandler(services.Portfolio, uploadLimit)
	offeringHandler := NewOfferingHandler(services.Offerings, uploadLimit)
	pricingHandler := NewPricingHandler(services.Pricing)
	aboutHandler := NewAboutHandler(services.About, uploadLimit)
	contactHandler := NewContactHandler(services.Contact)
	inquiryHandler := NewInquiryHandler(services.Inquiries)

	// Public routes
	v1.GET("/content", siteHandler.Content)
	v1.GET("/portfolio", portfolioHandler.List)
	v1.GET("/services", offeringHandler.List)
	v1.GET("/pricing", pricingHandler.List)
	v1.GET("/about", aboutHandler.Get)
	v1.GET("/contact", contactHandler.Get)
	v1.POST("/inquiries", inquiryHandler.Submit)

	// Session routes
	v1.POST("/auth/login", authHandler.Login)
	session := v1.Group("/auth", AuthMiddleware(services.Auth))
	session.POST("/logout", authHandler.Logout)
	session.GET("/me", authHandler.Me)

	// Admin routes
	admin := v1.Group("/admin", AuthMiddleware(services.Auth), RequireAdmin())

	admin.GET("/portfolio", portfolioHandler.List)
	admin.POST("/portfolio", portfolioHandler.Upload)
	admin.PUT("/portfolio/:id", portfolioHandler.Update)
	admin.DELETE("/portfolio/:id", portfolioHandler.DeleteByID)

	admin.GET("/services", offeringHandler.List)
	admin.POST("/services", offeringHandler.Create)
	admin.PUT("/services/:id", offeringHandler.Update)
	admin.DELETE("/services/:id", offeringHandler.DeleteByID)

	admin.GET("/pricing", pricingHandler.List)
	admin.POST("/pricing", pricingHandler.Create)
	admin.PUT("/pricing/:id", pricingHandler.Update)
	admin.DELETE("/pricing/:id", pricingHandler.DeleteByID)

	admin.GET("/about", aboutHandler.Get)
	admin.PUT("/about", aboutHandler.Save)

	admin.GET("/contact", contactHandler.Get)
	admin.PUT("/contact", contactHandler.Save)

	admin.GET("/inquiries", inquiryHandler.List)
	admin.DELETE("/inquiries/:id", inquiryHandler.DeleteByID)
}
