package v1

import (
	"net/http"

	"github.com/MGTheTrain/photo-portfolio/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for the admin session endpoints
type AuthHandler interface {
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService) AuthHandler {
	return &authHandler{authService: authService}
}

// Login exchanges credentials for a session token
// @Summary Sign in to the admin panel
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, invalid(err), "invalid login data")
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, err, "invalid login data")
		return
	}

	session, err := handler.authService.Login(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		abortWithError(ctx, err, "invalid email or password")
		return
	}

	ctx.JSON(http.StatusOK, SessionResponse{
		Token:     session.Token,
		TokenType: "Bearer",
		ExpiresAt: session.ExpiresAt,
		User:      newUserResponse(session.User),
	})
}

// Logout revokes the current session token
func (handler *authHandler) Logout(ctx *gin.Context) {
	claims := SessionClaims(ctx)
	if claims == nil {
		abortWithError(ctx, users.ErrInvalidToken, "authentication required")
		return
	}

	if err := handler.authService.Logout(ctx.Request.Context(), claims); err != nil {
		abortWithError(ctx, err, "failed to sign out")
		return
	}

	ctx.JSON(http.StatusOK, newInfoResponse("signed out"))
}

// Me returns the account behind the current session
func (handler *authHandler) Me(ctx *gin.Context) {
	claims := SessionClaims(ctx)
	if claims == nil {
		abortWithError(ctx, users.ErrInvalidToken, "authentication required")
		return
	}

	user, err := handler.authService.GetUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(ctx, err, "failed to load user")
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}
