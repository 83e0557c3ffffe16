package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/platform/config"
	"github.com/stackscout/stackscout/internal/utils"
)

const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler drives the Google sign-in flow.
type GoogleOAuthHandler struct {
	cfg                *config.Config
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	authHandler        *AuthHandler
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, googleOAuthService portssvc.GoogleOAuthSvcFacade, authHandler *AuthHandler) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{cfg: cfg, googleOAuthService: googleOAuthService, authHandler: authHandler}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes on the auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, authHandler *AuthHandler) {
	h := NewGoogleOAuthHandler(cfg, services.GoogleOAuth, authHandler)
	google := rg.Group("/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.GET("/callback", h.CallbackGoogle)
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent page. A CSRF
// state value is stored in a short-lived cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}
	c.SetCookie(oauthStateCookieName, state, 300, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.AuthCodeURL(state))
}

// CallbackGoogle godoc
// @Summary Google sign-in callback
// @Description Validates the OAuth state, exchanges the authorization code,
// and opens a session for the matching user.
// @Tags oauth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code missing"})
		return
	}

	user, err := h.googleOAuthService.ExchangeAndAuthenticate(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, err, "Google sign-in failed")
		return
	}

	resp, err := h.authHandler.issueSession(c, user)
	if err != nil {
		respondWithError(c, err, "Failed to create session")
		return
	}
	c.JSON(http.StatusOK, resp)
}
