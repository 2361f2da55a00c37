package services

import (
	"time"

	"matchmate_backend/internal/apperrors"
	"matchmate_backend/internal/auth"
)

type AuthService interface {
	// IssueToken mints a signed credential for the given identity claim.
	// The claim is not validated against stored accounts: issuance is part of
	// the first-contact login flow.
	IssueToken(email string) (string, error)
}

type AuthServiceImpl struct {
	secret string
	ttl    time.Duration
}

func NewAuthService(secret string, ttlHours int) AuthService {
	ttl := auth.TokenTTL
	if ttlHours > 0 {
		ttl = time.Duration(ttlHours) * time.Hour
	}
	return &AuthServiceImpl{secret: secret, ttl: ttl}
}

func (s *AuthServiceImpl) IssueToken(email string) (string, error) {
	token, err := auth.IssueToken(email, s.secret, s.ttl)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}
