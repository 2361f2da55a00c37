package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeBiodataNotFound  ErrorCode = "BIODATA_NOT_FOUND"
	CodeFavoriteNotFound ErrorCode = "FAVORITE_NOT_FOUND"
	CodeRequestNotFound  ErrorCode = "CONTACT_REQUEST_NOT_FOUND"

	// Upstream failures
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodePaymentProviderError ErrorCode = "PAYMENT_PROVIDER_ERROR"
)
