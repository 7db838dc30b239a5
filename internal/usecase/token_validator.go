package usecase

import (
	"membership-portal/internal/domain/member"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator abstracts access-token verification for the auth middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, member.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, member.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := member.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token carries an unknown role")
	}

	return claims.MemberID, role, nil
}
