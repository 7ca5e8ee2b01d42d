package v1

import (
	"net/http"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"

	"github.com/gin-gonic/gin"
)

// OfferingHandler defines the interface for the services section endpoints
type OfferingHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type offeringHandler struct {
	offeringService offerings.OfferingService
	uploadLimit     int64
}

// NewOfferingHandler creates a new OfferingHandler
func NewOfferingHandler(offeringService offerings.OfferingService, uploadLimit int64) OfferingHandler {
	return &offeringHandler{
		offeringService: offeringService,
		uploadLimit:     uploadLimit,
	}
}

func (handler *offeringHandler) List(ctx *gin.Context) {
	list, err := handler.offeringService.List(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, "failed to load services")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(list, newOfferingResponse))
}

// Create reads title, description, display_order and an optional image from a multipart form
func (handler *offeringHandler) Create(ctx *gin.Context) {
	input, err := offeringInput(ctx)
	if err != nil {
		abortWithError(ctx, err, "invalid service data")
		return
	}

	image, closeFile, err := formImage(ctx, "image", handler.uploadLimit, false)
	defer closeFile()
	if err != nil {
		abortWithError(ctx, err, "failed to upload image")
		return
	}

	offering, err := handler.offeringService.Create(ctx.Request.Context(), input, image)
	if err != nil {
		abortWithError(ctx, err, "failed to save service")
		return
	}

	ctx.JSON(http.StatusCreated, newOfferingResponse(offering))
}

// Update replaces the text of a service and, when "image" is sent, its picture
func (handler *offeringHandler) Update(ctx *gin.Context) {
	input, err := offeringInput(ctx)
	if err != nil {
		abortWithError(ctx, err, "invalid service data")
		return
	}

	image, closeFile, err := formImage(ctx, "image", handler.uploadLimit, false)
	defer closeFile()
	if err != nil {
		abortWithError(ctx, err, "failed to upload image")
		return
	}

	offering, err := handler.offeringService.Update(ctx.Request.Context(), ctx.Param("id"), input, image)
	if err != nil {
		abortWithError(ctx, err, "failed to save service")
		return
	}

	ctx.JSON(http.StatusOK, newOfferingResponse(offering))
}

func (handler *offeringHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.offeringService.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err, "failed to delete service")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func offeringInput(ctx *gin.Context) (offerings.OfferingInput, error) {
	order, err := formInt(ctx, "display_order")
	if err != nil {
		return offerings.OfferingInput{}, err
	}

	return offerings.OfferingInput{
		Title:        ctx.PostForm("title"),
		Description:  ctx.PostForm("description"),
		DisplayOrder: order,
	}, nil
}
