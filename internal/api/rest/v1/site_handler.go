package v1

import (
	"net/http"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the aggregated public content
type SiteHandler interface {
	Content(ctx *gin.Context)
}

type siteHandler struct {
	contentService site.ContentService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(contentService site.ContentService) SiteHandler {
	return &siteHandler{contentService: contentService}
}

// Content returns every section of the public site in one document
// @Summary Get the public site content
// @Tags Site
// @Produce json
// @Success 200 {object} ContentResponse
// @Failure 500 {object} ErrorResponse
// @Router /content [get]
func (handler *siteHandler) Content(ctx *gin.Context) {
	content, err := handler.contentService.Content(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, "failed to load site content")
		return
	}

	ctx.JSON(http.StatusOK, newContentResponse(content))
}
