package v1

import (
	"net/http"
	"strings"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler defines the interface for the gallery endpoints
type PortfolioHandler interface {
	List(ctx *gin.Context)
	Upload(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type portfolioHandler struct {
	portfolioService portfolio.ItemService
	uploadLimit      int64
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService portfolio.ItemService, uploadLimit int64) PortfolioHandler {
	return &portfolioHandler{
		portfolioService: portfolioService,
		uploadLimit:      uploadLimit,
	}
}

// List returns the gallery in display order
// @Summary List portfolio images
// @Tags Portfolio
// @Produce json
// @Success 200 {array} PortfolioItemResponse
// @Failure 500 {object} ErrorResponse
// @Router /portfolio [get]
func (handler *portfolioHandler) List(ctx *gin.Context) {
	items, err := handler.portfolioService.List(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, "failed to load portfolio items")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(items, newPortfolioItemResponse))
}

// Upload stores the multipart "file" and appends it to the gallery
// @Summary Upload a portfolio image
// @Tags Portfolio
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param alt_text formData string false "Alternative text, defaults to the file name"
// @Success 201 {object} PortfolioItemResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/portfolio [post]
func (handler *portfolioHandler) Upload(ctx *gin.Context) {
	upload, closeFile, err := formImage(ctx, "file", handler.uploadLimit, true)
	defer closeFile()
	if err != nil {
		abortWithError(ctx, err, "failed to upload image")
		return
	}

	item, err := handler.portfolioService.Upload(ctx.Request.Context(), upload, strings.TrimSpace(ctx.PostForm("alt_text")))
	if err != nil {
		abortWithError(ctx, err, "failed to upload image")
		return
	}

	ctx.JSON(http.StatusCreated, newPortfolioItemResponse(item))
}

// Update changes alt text or display order
func (handler *portfolioHandler) Update(ctx *gin.Context) {
	var request UpdatePortfolioItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, invalid(err), "invalid portfolio item data")
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, err, "invalid portfolio item data")
		return
	}

	patch := portfolio.ItemPatch{AltText: request.AltText, DisplayOrder: request.DisplayOrder}
	item, err := handler.portfolioService.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		abortWithError(ctx, err, "failed to update portfolio item")
		return
	}

	ctx.JSON(http.StatusOK, newPortfolioItemResponse(item))
}

// DeleteByID removes an image from the gallery
func (handler *portfolioHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.portfolioService.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err, "failed to delete image")
		return
	}

	ctx.Status(http.StatusNoContent)
}
