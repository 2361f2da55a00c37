package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/models"
	"matchmate_backend/internal/services"
)

type BiodataHandler struct {
	*BaseHandler
	biodataService services.BiodataService
}

func NewBiodataHandler(base *BaseHandler, biodataService services.BiodataService) *BiodataHandler {
	return &BiodataHandler{
		BaseHandler:    base,
		biodataService: biodataService,
	}
}

func (h *BiodataHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	// Public listings
	r.GET("/premiumUser", h.PremiumListing)
	r.GET("/sameBio", h.SimilarBiodata)

	r.POST("/bioData", authRequired, h.Create)
	r.PATCH("/userBio/:email", authRequired, h.Update)
	r.GET("/userBio/:email", authRequired, h.GetByEmail)
	r.GET("/singleBio/:id", authRequired, h.GetByID)
	r.GET("/contactBiodata/:bioId", authRequired, h.GetByBioID)
}

func (h *BiodataHandler) Create(c *gin.Context) {
	var bio models.Biodata
	if !h.BindAndValidateJSON(c, &bio) {
		return
	}
	// The body carries the owner identity; it must be the caller's own.
	if !h.AuthorizeOwner(c, bio.Email) {
		return
	}

	ack, err := h.biodataService.Create(c.Request.Context(), &bio)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ack)
}

func (h *BiodataHandler) Update(c *gin.Context) {
	email := c.Param("email")
	if !h.AuthorizeOwner(c, email) {
		return
	}

	var bio models.Biodata
	if !h.BindAndValidateJSON(c, &bio) {
		return
	}

	ack, err := h.biodataService.Update(c.Request.Context(), email, &bio)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *BiodataHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	if !h.AuthorizeOwner(c, email) {
		return
	}

	bio, err := h.biodataService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bio)
}

func (h *BiodataHandler) GetByID(c *gin.Context) {
	bio, err := h.biodataService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bio)
}

func (h *BiodataHandler) GetByBioID(c *gin.Context) {
	bioID, err := strconv.Atoi(c.Param("bioId"))
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid bioId: not an integer"))
		return
	}

	bio, svcErr := h.biodataService.GetByBioID(c.Request.Context(), bioID)
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bio)
}

// PremiumListing serves the joined premium view, at most 6 records. The age
// query picks the sort direction; anything unparseable means no explicit
// order.
func (h *BiodataHandler) PremiumListing(c *gin.Context) {
	results, err := h.biodataService.PremiumListing(c.Request.Context(), c.Query("age"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *BiodataHandler) SimilarBiodata(c *gin.Context) {
	results, err := h.biodataService.GetSimilar(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
