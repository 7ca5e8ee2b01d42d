package v1

import (
	"net/http"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"

	"github.com/gin-gonic/gin"
)

// InquiryHandler defines the interface for contact form messages
type InquiryHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type inquiryHandler struct {
	inquiryService inquiries.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler
func NewInquiryHandler(inquiryService inquiries.InquiryService) InquiryHandler {
	return &inquiryHandler{inquiryService: inquiryService}
}

// Submit stores a visitor message
// @Summary Send a message through the contact form
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param requestBody body InquiryRequest true "Message"
// @Success 201 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /inquiries [post]
func (handler *inquiryHandler) Submit(ctx *gin.Context) {
	var request InquiryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, invalid(err), "invalid message")
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, err, "invalid message")
		return
	}

	_, err := handler.inquiryService.Submit(ctx.Request.Context(), inquiries.InquiryInput{
		Name:    request.Name,
		Email:   request.Email,
		Message: request.Message,
	})
	if err != nil {
		abortWithError(ctx, err, "failed to send message")
		return
	}

	ctx.JSON(http.StatusCreated, newInfoResponse("message sent"))
}

func (handler *inquiryHandler) List(ctx *gin.Context) {
	list, err := handler.inquiryService.List(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, "failed to load messages")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(list, newInquiryResponse))
}

func (handler *inquiryHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.inquiryService.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err, "failed to delete message")
		return
	}

	ctx.Status(http.StatusNoContent)
}
