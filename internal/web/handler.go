package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/inquiries"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/site"
	"github.com/MGTheTrain/photo-portfolio/internal/i18n"
	"github.com/MGTheTrain/photo-portfolio/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Handler serves the public pages
type Handler struct {
	contentService site.ContentService
	inquiryService inquiries.InquiryService
	catalog        *i18n.Catalog
	tmpl           *template.Template
	logger         logger.Logger
	now            func() time.Time
}

// NewHandler parses the embedded templates
func NewHandler(contentService site.ContentService, inquiryService inquiries.InquiryService, catalog *i18n.Catalog, logger logger.Logger) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"paragraphs": paragraphs,
	}).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &Handler{
		contentService: contentService,
		inquiryService: inquiryService,
		catalog:        catalog,
		tmpl:           tmpl,
		logger:         logger,
		now:            time.Now,
	}, nil
}

// Register mounts the pages on r. Files under mediaDir are served at the
// path of mediaURL when mediaDir is set.
func (h *Handler) Register(r *gin.Engine, mediaURL, mediaDir string) error {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}

	r.SetHTMLTemplate(h.tmpl)
	r.StaticFS("/static", http.FS(static))
	if mediaDir != "" {
		u, err := url.Parse(mediaURL)
		if err != nil {
			return fmt.Errorf("invalid media URL %q: %w", mediaURL, err)
		}
		prefix := "/" + strings.Trim(u.Path, "/")
		if prefix == "/" {
			return fmt.Errorf("media URL %q needs a path", mediaURL)
		}
		r.Static(prefix, mediaDir)
	}

	r.GET("/", h.Index)
	r.POST("/contact", h.SubmitContact)
	return nil
}

type pageData struct {
	L       *i18n.Localizer
	Content *site.Content
	Footer  string
	Sent    bool
	Failed  bool
}

// Index renders the whole site
func (h *Handler) Index(ctx *gin.Context) {
	localizer := h.catalog.Localizer(h.catalog.Resolve(ctx.Request))

	content, err := h.contentService.Content(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to load site content", "error", err)
		ctx.String(http.StatusInternalServerError, "failed to load site content")
		return
	}

	ctx.HTML(http.StatusOK, "index.html", pageData{
		L:       localizer,
		Content: content,
		Footer:  footer(localizer, content.Hero, h.now().Year()),
		Sent:    ctx.Query("sent") == "1",
		Failed:  ctx.Query("sent") == "0",
	})
}

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
	Lang    string `form:"lang"`
}

// SubmitContact stores the contact form as an inquiry and redirects back to
// the contact section
func (h *Handler) SubmitContact(ctx *gin.Context) {
	var form contactForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.Redirect(http.StatusSeeOther, contactURL(form.Lang, false))
		return
	}

	_, err := h.inquiryService.Submit(ctx.Request.Context(), inquiries.InquiryInput{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		h.logger.Warn("contact form rejected", "error", err)
		ctx.Redirect(http.StatusSeeOther, contactURL(form.Lang, false))
		return
	}

	ctx.Redirect(http.StatusSeeOther, contactURL(form.Lang, true))
}

func contactURL(lang string, sent bool) string {
	q := url.Values{}
	if lang = strings.TrimSpace(lang); lang != "" {
		q.Set(i18n.LangParam, lang)
	}
	if sent {
		q.Set("sent", "1")
	} else {
		q.Set("sent", "0")
	}
	return "/?" + q.Encode() + "#contact"
}

func footer(localizer *i18n.Localizer, hero site.Hero, year int) string {
	holder := hero.CopyrightBy
	if holder == "" {
		holder = hero.SiteName
	}
	return localizer.Tf("footer_rights", map[string]any{"Year": year, "Holder": holder})
}

// paragraphs splits text on blank lines
func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
