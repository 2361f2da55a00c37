package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchmate_backend/internal/handlers"
)

// RegisterRoutes mounts every HTTP route. Paths live at the root because the
// deployed frontend consumes them there.
func RegisterRoutes(
	r *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authRequired gin.HandlerFunc,
	adminRequired gin.HandlerFunc,
) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MatchMate server running")
	})

	appHandlers.AuthHandler.RegisterRoutes(r)
	appHandlers.UserHandler.RegisterRoutes(r, authRequired)
	appHandlers.BiodataHandler.RegisterRoutes(r, authRequired)
	appHandlers.FavoriteHandler.RegisterRoutes(r, authRequired)
	appHandlers.ContactHandler.RegisterRoutes(r, authRequired)
	appHandlers.ReviewHandler.RegisterRoutes(r)
	appHandlers.PaymentHandler.RegisterRoutes(r)
	appHandlers.AdminHandler.RegisterRoutes(r, authRequired, adminRequired)
}
