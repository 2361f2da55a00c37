package handlers

import (
	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/logger"
	"matchmate_backend/internal/middleware"
	"matchmate_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the body and runs struct validation. On failure
// the error response is already written and false is returned.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps service errors to responses, logging 5xx causes.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.HTTPCode < 500 {
		logger.CtxWarn(ctx, "service error",
			"code", appErr.Code,
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
	} else {
		logger.CtxWithError(ctx, "service failure", err, "path", c.Request.URL.Path)
	}
	apperrors.HandleError(c, err)
}

// AuthorizeOwner enforces the ownership contract: the guard-derived identity
// must equal the identity the endpoint targets. Runs before any data access;
// writes 403 and returns false on mismatch.
func (h *BaseHandler) AuthorizeOwner(c *gin.Context, targetEmail string) bool {
	email := middleware.GetUserEmail(c)
	if email == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return false
	}
	if email != targetEmail {
		logger.CtxWarn(c.Request.Context(), "ownership check failed",
			"target", targetEmail,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return false
	}
	return true
}

// CallerEmail returns the guard-derived identity, writing 401 when absent.
func (h *BaseHandler) CallerEmail(c *gin.Context) (string, bool) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return email, true
}
