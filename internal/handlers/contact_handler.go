package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/models"
	"matchmate_backend/internal/services"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

// Route paths here are part of the original wire contract, spelling included.
func (h *ContactHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	r.POST("/cheackrequest", authRequired, h.Submit)
	r.GET("/contactReq/:email", authRequired, h.MyRequests)
	r.DELETE("/deleteMyReq/:id", authRequired, h.Withdraw)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if !h.AuthorizeOwner(c, req.ApplicantEmail) {
		return
	}

	ack, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ack)
}

func (h *ContactHandler) MyRequests(c *gin.Context) {
	email := c.Param("email")
	if !h.AuthorizeOwner(c, email) {
		return
	}

	requests, err := h.contactService.MyRequests(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *ContactHandler) Withdraw(c *gin.Context) {
	email, ok := h.CallerEmail(c)
	if !ok {
		return
	}

	ack, err := h.contactService.Withdraw(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
