package middleware

import (
	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/auth"
	"matchmate_backend/internal/logger"
	"matchmate_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Context key under which the authenticated identity is stored.
const UserEmailKey = "userEmail"

// Auth is the access guard: it reads the credential cookie, verifies
// signature and expiry, and attaches the decoded identity to the request.
// Missing and invalid credentials both answer 401, distinguished only by
// message.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.CookieName)
		if err != nil || tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(UserEmailKey, claims.Email)
		ctx := logger.WithUserEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin is the role guard, layered after Auth. It loads the caller's
// stored account and rejects non-admins. A valid credential with no stored
// account is rejected too, not dereferenced.
func RequireAdmin(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if err == repositories.ErrUserNotFound {
				logger.CtxWarn(c.Request.Context(), "admin check for unknown account", "email", email)
				apperrors.HandleError(c, apperrors.ErrForbidden)
				return
			}
			apperrors.HandleError(c, apperrors.DatabaseError(err))
			return
		}

		if !user.IsAdmin() {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// GetUserEmail extracts the guard-derived identity from the context.
func GetUserEmail(c *gin.Context) string {
	val, exists := c.Get(UserEmailKey)
	if !exists {
		return ""
	}
	email, ok := val.(string)
	if !ok {
		return ""
	}
	return email
}
