package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/models"
	"matchmate_backend/internal/services"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/addReview", h.Add)
}

func (h *ReviewHandler) Add(c *gin.Context) {
	var review models.Review
	if !h.BindAndValidateJSON(c, &review) {
		return
	}

	ack, err := h.reviewService.Add(c.Request.Context(), &review)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ack)
}
