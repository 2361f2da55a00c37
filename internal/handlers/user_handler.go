package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/services"
	"matchmate_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.POST("/userLogin", h.Login)

	r.GET("/userData/:email", authRequired, h.GetUserData)
	r.PATCH("/userPending/:email", authRequired, h.RequestPremium)
}

// Login is reachable without a credential; it backs the first-contact flow.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserData(c *gin.Context) {
	email := c.Param("email")
	if !h.AuthorizeOwner(c, email) {
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) RequestPremium(c *gin.Context) {
	email := c.Param("email")
	if !h.AuthorizeOwner(c, email) {
		return
	}

	var req dto.PendingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ack, err := h.userService.RequestPremium(c.Request.Context(), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
