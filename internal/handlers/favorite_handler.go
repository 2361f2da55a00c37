package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/models"
	"matchmate_backend/internal/services"
	"matchmate_backend/internal/services/dto"
)

type FavoriteHandler struct {
	*BaseHandler
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(base *BaseHandler, favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     base,
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.POST("/myFavorite", authRequired, h.Add)
	r.GET("/myFavorite/:email", authRequired, h.List)
	r.DELETE("/myFavoriteItem/:id", authRequired, h.Remove)
}

// Add stores a favorite idempotently: a duplicate (email, serverId) pair
// answers {status: true} without inserting.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var fav models.Favorite
	if !h.BindAndValidateJSON(c, &fav) {
		return
	}
	if !h.AuthorizeOwner(c, fav.Email) {
		return
	}

	created, ack, err := h.favoriteService.Add(c.Request.Context(), &fav)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, dto.StatusResponse{Status: true})
		return
	}
	c.JSON(http.StatusCreated, ack)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	email := c.Param("email")
	if !h.AuthorizeOwner(c, email) {
		return
	}

	views, err := h.favoriteService.List(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	ack, err := h.favoriteService.Remove(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
