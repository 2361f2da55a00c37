package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/auth"
	"matchmate_backend/internal/services"
	"matchmate_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	production  bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, production bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		production:  production,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/jwt", h.IssueToken)
	r.POST("/logout", h.Logout)
}

// IssueToken mints the credential cookie for the posted identity claim.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetTokenCookie(c, token, h.production)
	c.JSON(http.StatusOK, dto.StatusResponse{Status: true})
}

// Logout clears the cookie. Issued tokens stay valid until natural expiry;
// there is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearTokenCookie(c, h.production)
	c.JSON(http.StatusOK, dto.StatusResponse{Status: false})
}
