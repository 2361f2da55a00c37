package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/services"
)

type AdminHandler struct {
	*BaseHandler
	adminService   services.AdminService
	contactService services.ContactService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, contactService services.ContactService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		adminService:   adminService,
		contactService: contactService,
	}
}

// Every admin route runs behind both guards: credential first, stored role
// second.
func (h *AdminHandler) RegisterRoutes(r *gin.Engine, authRequired, adminRequired gin.HandlerFunc) {
	admin := r.Group("", authRequired, adminRequired)
	{
		admin.GET("/userPremiumReq", h.PendingMemberships)
		admin.PATCH("/userReq/:id", h.ApprovePremium)
		admin.PATCH("/makeAdmin/:id", h.MakeAdmin)
		admin.GET("/allContactReq", h.AllContactRequests)
		admin.PATCH("/approvedContactReq/:id", h.ApproveContactRequest)
		admin.GET("/allReqPending", h.PendingRequestCount)
		admin.GET("/allUserData", h.AllUsers)
		admin.GET("/allInformation", h.Dashboard)
	}
}

func (h *AdminHandler) PendingMemberships(c *gin.Context) {
	users, err := h.adminService.PendingMemberships(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ApprovePremium(c *gin.Context) {
	ack, err := h.adminService.ApprovePremium(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *AdminHandler) MakeAdmin(c *gin.Context) {
	ack, err := h.adminService.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *AdminHandler) AllContactRequests(c *gin.Context) {
	requests, err := h.contactService.All(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *AdminHandler) ApproveContactRequest(c *gin.Context) {
	ack, err := h.contactService.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *AdminHandler) PendingRequestCount(c *gin.Context) {
	count, err := h.contactService.CountPending(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *AdminHandler) AllUsers(c *gin.Context) {
	users, err := h.adminService.AllUsers(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	info, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
