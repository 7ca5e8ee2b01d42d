package v1

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// PricingHandler defines the interface for the pricing plan endpoints
type PricingHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type pricingHandler struct {
	pricingService pricing.PlanService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(pricingService pricing.PlanService) PricingHandler {
	return &pricingHandler{pricingService: pricingService}
}

// List returns plans, optionally restricted with ?category=wedding|video
// @Summary List pricing plans
// @Tags Pricing
// @Produce json
// @Param category query string false "wedding or video"
// @Success 200 {array} PricingPlanResponse
// @Failure 400 {object} ErrorResponse
// @Router /pricing [get]
func (handler *pricingHandler) List(ctx *gin.Context) {
	category := ctx.Query("category")
	if category != "" && !slices.Contains(pricing.Categories, category) {
		abortWithError(ctx, fmt.Errorf("unknown category %q: %w", category, validators.ErrInvalid), "invalid query")
		return
	}

	plans, err := handler.pricingService.List(ctx.Request.Context(), category)
	if err != nil {
		abortWithError(ctx, err, "failed to load pricing plans")
		return
	}

	ctx.JSON(http.StatusOK, mapSlice(plans, newPricingPlanResponse))
}

func (handler *pricingHandler) Create(ctx *gin.Context) {
	request, ok := bindPlan(ctx)
	if !ok {
		return
	}

	plan, err := handler.pricingService.Create(ctx.Request.Context(), request.ToInput())
	if err != nil {
		abortWithError(ctx, err, "failed to save pricing plan")
		return
	}

	ctx.JSON(http.StatusCreated, newPricingPlanResponse(plan))
}

func (handler *pricingHandler) Update(ctx *gin.Context) {
	request, ok := bindPlan(ctx)
	if !ok {
		return
	}

	plan, err := handler.pricingService.Update(ctx.Request.Context(), ctx.Param("id"), request.ToInput())
	if err != nil {
		abortWithError(ctx, err, "failed to save pricing plan")
		return
	}

	ctx.JSON(http.StatusOK, newPricingPlanResponse(plan))
}

func (handler *pricingHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.pricingService.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err, "failed to delete pricing plan")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindPlan(ctx *gin.Context) (*PricingPlanRequest, bool) {
	var request PricingPlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, invalid(err), "invalid pricing plan data")
		return nil, false
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, err, "invalid pricing plan data")
		return nil, false
	}
	return &request, true
}
