package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/civease/civease/internal/pkg/models"
)

// IdentityKind discriminates the two identity spaces a token can bind to.
// A token carries exactly one kind; handlers for one surface must never
// accept tokens of the other.
type IdentityKind string

const (
	IdentityCitizen   IdentityKind = "citizen"
	IdentityAuthority IdentityKind = "authority"
)

// Claims represents registered JWT claims plus the bound identity
type Claims struct {
	SubjectID uuid.UUID    `json:"subject_id"`
	Kind      IdentityKind `json:"kind"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed session token bound to one identity
func GenerateToken(subjectID uuid.UUID, kind IdentityKind, cfg models.JWTConfig) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := Claims{
		SubjectID: subjectID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns its claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
