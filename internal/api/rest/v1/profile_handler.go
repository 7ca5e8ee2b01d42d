package v1

import (
	"net/http"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/images"
	"github.com/MGTheTrain/photo-portfolio/internal/domain/profile"

	"github.com/gin-gonic/gin"
)

// AboutHandler defines the interface for the about section endpoints
type AboutHandler interface {
	Get(ctx *gin.Context)
	Save(ctx *gin.Context)
}

type aboutHandler struct {
	aboutService profile.AboutService
	uploadLimit  int64
}

// NewAboutHandler creates a new AboutHandler
func NewAboutHandler(aboutService profile.AboutService, uploadLimit int64) AboutHandler {
	return &aboutHandler{
		aboutService: aboutService,
		uploadLimit:  uploadLimit,
	}
}

func (handler *aboutHandler) Get(ctx *gin.Context) {
	about, err := handler.aboutService.Get(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, "about section not found")
		return
	}

	ctx.JSON(http.StatusOK, newAboutResponse(about))
}

// Save upserts the about section from a multipart form. portrait_image and
// working_image are only required the first time.
func (handler *aboutHandler) Save(ctx *gin.Context) {
	input, err := aboutInput(ctx)
	if err != nil {
		abortWithError(ctx, err, "invalid about data")
		return
	}

	uploads := make([]*images.Upload, 2)
	for i, field := range []string{"portrait_image", "working_image"} {
		upload, closeFile, err := formImage(ctx, field, handler.uploadLimit, false)
		defer closeFile()
		if err != nil {
			abortWithError(ctx, err, "failed to upload image")
			return
		}
		uploads[i] = upload
	}

	about, err := handler.aboutService.Save(ctx.Request.Context(), input, uploads[0], uploads[1])
	if err != nil {
		abortWithError(ctx, err, "failed to save about section")
		return
	}

	ctx.JSON(http.StatusOK, newAboutResponse(about))
}

func aboutInput(ctx *gin.Context) (profile.AboutInput, error) {
	input := profile.AboutInput{
		Title:    ctx.PostForm("title"),
		Subtitle: ctx.PostForm("subtitle"),
		Bio:      ctx.PostForm("bio"),
	}

	counters := map[string]*int{
		"years_experience": &input.YearsExperience,
		"happy_clients":    &input.HappyClients,
		"awards":           &input.Awards,
		"projects":         &input.Projects,
	}
	for field, target := range counters {
		v, err := formCount(ctx, field)
		if err != nil {
			return profile.AboutInput{}, err
		}
		*target = v
	}
	return input, nil
}

// ContactHandler defines the interface for the contact block endpoints
type ContactHandler interface {
	Get(ctx *gin.Context)
	Save(ctx *gin.Context)
}

type contactHandler struct {
	contactService profile.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService profile.ContactService) ContactHandler {
	return &contactHandler{contactService: contactService}
}

func (handler *contactHandler) Get(ctx *gin.Context) {
	contact, err := handler.contactService.Get(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err, "contact information not found")
		return
	}

	ctx.JSON(http.StatusOK, newContactResponse(contact))
}

func (handler *contactHandler) Save(ctx *gin.Context) {
	var request ContactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, invalid(err), "invalid contact data")
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, err, "invalid contact data")
		return
	}

	contact, err := handler.contactService.Save(ctx.Request.Context(), profile.ContactInput{
		Email:    request.Email,
		Phone:    request.Phone,
		Location: request.Location,
	})
	if err != nil {
		abortWithError(ctx, err, "failed to save contact information")
		return
	}

	ctx.JSON(http.StatusOK, newContactResponse(contact))
}
