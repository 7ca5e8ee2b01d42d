//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/httputil"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOfferingHandler_List(t *testing.T) {
	mockOfferingService := new(MockOfferingService)
	handler := NewOfferingHandler(mockOfferingService, testUploadLimit)

	mockOfferingService.On("List", mock.Anything).Return([]*offerings.Offering{
		{ID: "svc-1", Title: "Mariages", Description: "Reportage complet", DisplayOrder: 0},
	}, nil)

	c, w := newJSONContext(http.MethodGet, "/services", "")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mariages")
	assert.NotContains(t, w.Body.String(), "image_url")
}

func TestOfferingHandler_Create_WithoutImage(t *testing.T) {
	mockOfferingService := new(MockOfferingService)
	handler := NewOfferingHandler(mockOfferingService, testUploadLimit)

	input := offerings.OfferingInput{Title: "Mariages", Description: "Reportage complet"}
	mockOfferingService.On("Create", mock.Anything, input, (*images.Upload)(nil)).
		Return(&offerings.Offering{ID: "svc-1", Title: "Mariages"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, http.MethodPost, "/admin/services",
		map[string]string{"title": "Mariages", "description": "Reportage complet"})

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "svc-1")
	mockOfferingService.AssertExpectations(t)
}

func TestOfferingHandler_Create_WithImageAndOrder(t *testing.T) {
	mockOfferingService := new(MockOfferingService)
	handler := NewOfferingHandler(mockOfferingService, testUploadLimit)

	isInput := mock.MatchedBy(func(in offerings.OfferingInput) bool {
		return in.Title == "Mariages" && in.DisplayOrder != nil && *in.DisplayOrder == 2
	})
	isJPEG := mock.MatchedBy(func(u *images.Upload) bool {
		return u != nil && u.FileName == "wedding.jpg" && u.ContentType == "image/jpeg"
	})
	mockOfferingService.On("Create", mock.Anything, isInput, isJPEG).
		Return(&offerings.Offering{ID: "svc-1", Title: "Mariages", ImageURL: "/media/services/x.jpg"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, http.MethodPost, "/admin/services",
		map[string]string{"title": "Mariages", "description": "Reportage complet", "display_order": "2"},
		httputil.FilePart{Field: "image", FileName: "wedding.jpg", Content: testutil.JPEGBytes()})

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "/media/services/x.jpg")
	mockOfferingService.AssertExpectations(t)
}

func TestOfferingHandler_Create_InvalidOrder(t *testing.T) {
	mockOfferingService := new(MockOfferingService)
	handler := NewOfferingHandler(mockOfferingService, testUploadLimit)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, http.MethodPost, "/admin/services",
		map[string]string{"title": "Mariages", "description": "x", "display_order": "first"})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "display_order must be a non-negative integer")
	mockOfferingService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestOfferingHandler_Update_StoreFailure(t *testing.T) {
	mockOfferingService := new(MockOfferingService)
	handler := NewOfferingHandler(mockOfferingService, testUploadLimit)

	mockOfferingService.On("Update", mock.Anything, "svc-1", mock.Anything, (*images.Upload)(nil)).
		Return(nil, errors.New("disk I/O error"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = testutil.NewMultipartRequest(t, http.MethodPut, "/admin/services/svc-1",
		map[string]string{"title": "Mariages", "description": "x"})
	c.Params = gin.Params{gin.Param{Key: "id", Value: "svc-1"}}

	handler.Update(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"failed to save service"}`, w.Body.String())
}

func TestOfferingHandler_DeleteByID(t *testing.T) {
	mockOfferingService := new(MockOfferingService)
	handler := NewOfferingHandler(mockOfferingService, testUploadLimit)

	mockOfferingService.On("DeleteByID", mock.Anything, "svc-1").Return(nil)

	c, w := newJSONContext(http.MethodDelete, "/admin/services/svc-1", "")
	c.Params = gin.Params{gin.Param{Key: "id", Value: "svc-1"}}
	handler.DeleteByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}
