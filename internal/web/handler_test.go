//go:build unit
// +build unit

package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/offerings"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/portfolio"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/pricing"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"
	"github.com/MGTheTrain/photo-portfolio/internal/i18n"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/testutil"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockContentService struct {
	mock.Mock
}

func (m *mockContentService) Content(ctx context.Context) (*site.Content, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*site.Content), args.Error(1)
}

type mockInquiryService struct {
	mock.Mock
}

func (m *mockInquiryService) Submit(ctx context.Context, input inquiries.InquiryInput) (*inquiries.Inquiry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiries.Inquiry), args.Error(1)
}

func (m *mockInquiryService) List(ctx context.Context) ([]*inquiries.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inquiries.Inquiry), args.Error(1)
}

func (m *mockInquiryService) DeleteByID(ctx context.Context, inquiryID string) error {
	return m.Called(ctx, inquiryID).Error(0)
}

func testContent() *site.Content {
	note := "à partir de"
	return &site.Content{
		Hero: site.Hero{SiteName: "Les Instants de Myriam", CopyrightBy: "Myriam Photographie"},
		Offerings: []*offerings.Offering{
			{ID: "svc-1", Title: "Mariages", Description: "Reportage de votre journée"},
		},
		Pricing: []site.PricingGroup{
			{Category: pricing.CategoryWedding, Plans: []*pricing.Plan{
				{ID: "plan-1", Name: "La Myna", Price: "800€", Features: []string{"Photos des mariés et de groupes"}, Popular: true},
				{ID: "plan-2", Name: "La Ultima", Price: "900€", PriceNote: &note},
			}},
		},
		Portfolio: []*portfolio.Item{
			{ID: "item-1", ImageURL: "/media/portfolio/a.jpg", AltText: "Sortie de cérémonie"},
		},
		About: &profile.About{
			Title:            "À propos",
			Subtitle:         "Photographe",
			Bio:              "Premier paragraphe.\n\nSecond paragraphe.",
			YearsExperience:  10,
			PortraitImageURL: "/media/about/p.jpg",
			WorkingImageURL:  "/media/about/w.jpg",
		},
		Contact: &profile.Contact{Email: "contact@example.com", Phone: "+33 6 00 00 00 00", Location: "Lyon"},
	}
}

func newTestRouter(t *testing.T, content *mockContentService, inquiryService *mockInquiryService, mediaDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := i18n.NewCatalog("fr")
	require.NoError(t, err)

	handler, err := NewHandler(content, inquiryService, catalog, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	handler.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	require.NoError(t, handler.Register(r, "/media", mediaDir))
	return r
}

func TestHandler_Index_French(t *testing.T) {
	content := new(mockContentService)
	content.On("Content", mock.Anything).Return(testContent(), nil)
	r := newTestRouter(t, content, new(mockInquiryService), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<html lang="fr">`)
	assert.Contains(t, body, "Les Instants de Myriam")
	assert.Contains(t, body, "Me Contacter")
	assert.Contains(t, body, "La Myna")
	assert.Contains(t, body, "Populaire")
	assert.Contains(t, body, "<small>à partir de</small>")
	assert.Contains(t, body, "<p>Second paragraphe.</p>")
	assert.Contains(t, body, "© 2025 Myriam Photographie. Tous droits réservés.")
	assert.NotContains(t, body, "contact_sent")
}

func TestHandler_Index_English(t *testing.T) {
	content := new(mockContentService)
	content.On("Content", mock.Anything).Return(testContent(), nil)
	r := newTestRouter(t, content, new(mockInquiryService), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=en&sent=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, "Contact Me")
	assert.Contains(t, body, "Message sent!")
}

func TestHandler_Index_EmptySite(t *testing.T) {
	content := new(mockContentService)
	content.On("Content", mock.Anything).Return(&site.Content{Hero: site.Hero{SiteName: "Studio"}}, nil)
	r := newTestRouter(t, content, new(mockInquiryService), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Aucune image pour le moment.")
	assert.NotContains(t, w.Body.String(), `id="about"`)
}

func TestHandler_Index_ContentError(t *testing.T) {
	content := new(mockContentService)
	content.On("Content", mock.Anything).Return(nil, errors.New("database is locked"))
	r := newTestRouter(t, content, new(mockInquiryService), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database is locked")
}

func postContact(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_SubmitContact(t *testing.T) {
	inquiryService := new(mockInquiryService)
	input := inquiries.InquiryInput{Name: "Camille", Email: "camille@example.com", Message: "Bonjour"}
	inquiryService.On("Submit", mock.Anything, input).Return(&inquiries.Inquiry{ID: "inq-1"}, nil)
	r := newTestRouter(t, new(mockContentService), inquiryService, "")

	w := postContact(r, url.Values{
		"name":    {"Camille"},
		"email":   {"camille@example.com"},
		"message": {"Bonjour"},
		"lang":    {"fr"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?lang=fr&sent=1#contact", w.Header().Get("Location"))
	inquiryService.AssertExpectations(t)
}

func TestHandler_SubmitContact_Rejected(t *testing.T) {
	inquiryService := new(mockInquiryService)
	inquiryService.On("Submit", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("invalid inquiry: %w", validators.ErrInvalid))
	r := newTestRouter(t, new(mockContentService), inquiryService, "")

	w := postContact(r, url.Values{"name": {"Camille"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?sent=0#contact", w.Header().Get("Location"))
}

func TestHandler_ServesMedia(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "portfolio"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "portfolio", "a.png"), testutil.PNGBytes(), 0o644))
	r := newTestRouter(t, new(mockContentService), new(mockInquiryService), dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/portfolio/a.png", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testutil.PNGBytes(), w.Body.Bytes())
}

func TestHandler_ServesStylesheet(t *testing.T) {
	r := newTestRouter(t, new(mockContentService), new(mockInquiryService), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "--accent")
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"one", "two\nlines"}, paragraphs("one\r\n\r\n\n\ntwo\nlines\n"))
	assert.Nil(t, paragraphs("  "))
}

func TestHandler_Register_MediaURL(t *testing.T) {
	catalog, err := i18n.NewCatalog("fr")
	require.NoError(t, err)
	handler, err := NewHandler(new(mockContentService), new(mockInquiryService), catalog, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	mediaDir := t.TempDir()
	require.NoError(t, handler.Register(gin.New(), "http://localhost:8080/media/", mediaDir))
	assert.Error(t, handler.Register(gin.New(), "http://localhost:8080", mediaDir))
}
