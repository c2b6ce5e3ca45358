package usecase

import (
	"parking-facility/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (subject string, role string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Role, nil
}
