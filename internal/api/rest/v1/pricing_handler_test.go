//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/domain"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPricingHandler_List_ByCategory(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	note := "par heure"
	mockPlanService.On("List", mock.Anything, pricing.CategoryVideo).Return([]*pricing.Plan{
		{ID: "plan-1", Name: "VIDEO FILM", Price: "200€", PriceNote: &note, Features: []string{"Film 10 min"}, Category: pricing.CategoryVideo},
	}, nil)

	c, w := newJSONContext(http.MethodGet, "/pricing?category=video", "")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "VIDEO FILM")
	assert.Contains(t, w.Body.String(), `"price_note":"par heure"`)
	mockPlanService.AssertExpectations(t)
}

func TestPricingHandler_List_All(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	mockPlanService.On("List", mock.Anything, "").Return([]*pricing.Plan{}, nil)

	c, w := newJSONContext(http.MethodGet, "/pricing", "")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPricingHandler_List_UnknownCategory(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	c, w := newJSONContext(http.MethodGet, "/pricing?category=portrait", "")
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
	mockPlanService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPricingHandler_Create(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	isInput := mock.MatchedBy(func(in pricing.PlanInput) bool {
		return in.Name == "La Nina" && in.FeaturesText == "6h de présence\nAlbum" && in.Popular
	})
	mockPlanService.On("Create", mock.Anything, isInput).
		Return(&pricing.Plan{ID: "plan-1", Name: "La Nina", Features: []string{"6h de présence", "Album"}, Category: pricing.CategoryWedding, Popular: true}, nil)

	body := `{"name":"La Nina","description":"Formule journée","price":"1500€","features_text":"6h de présence\nAlbum","popular":true}`
	c, w := newJSONContext(http.MethodPost, "/admin/pricing", body)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"features":["6h de présence","Album"]`)
	assert.Contains(t, w.Body.String(), `"notes":null`)
	mockPlanService.AssertExpectations(t)
}

func TestPricingHandler_Create_InvalidCategory(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	body := `{"name":"La Nina","description":"x","price":"1500€","category":"portrait"}`
	c, w := newJSONContext(http.MethodPost, "/admin/pricing", body)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid pricing plan data")
}

func TestPricingHandler_Update_NotFound(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	mockPlanService.On("Update", mock.Anything, "missing", mock.Anything).
		Return(nil, fmt.Errorf("pricing plan missing: %w", domain.ErrNotFound))

	c, w := newJSONContext(http.MethodPut, "/admin/pricing/missing", `{"name":"A","description":"B","price":"1€"}`)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}
	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPricingHandler_DeleteByID(t *testing.T) {
	mockPlanService := new(MockPlanService)
	handler := NewPricingHandler(mockPlanService)

	mockPlanService.On("DeleteByID", mock.Anything, "plan-1").Return(nil)

	c, w := newJSONContext(http.MethodDelete, "/admin/pricing/plan-1", "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: "plan-1"}}
	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockPlanService.AssertExpectations(t)
}
