package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/services"
	"matchmate_backend/internal/services/dto"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/create-payment-intent", h.CreateIntent)
}

// CreateIntent delegates to the external payment processor and returns the
// client secret the frontend needs to confirm the charge.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.PaymentIntentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.paymentService.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
