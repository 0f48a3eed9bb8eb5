// Package auth mints and verifies the HS256 access tokens handed to clients.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the user and the session the
// token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
}

func GenerateToken(userID, sessionID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:    userID,
		SessionID: sessionID,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString and returns its claims. An expired token
// yields common.ErrTokenExpired; anything else that fails verification
// yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" || claims.SessionID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
