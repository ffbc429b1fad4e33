// Package auth signs and verifies the session tokens handed to clients.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the owner and the server-side session of a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
}

func GenerateToken(userID, sessionID string, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	expires := time.Now().Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:    userID,
		SessionID: sessionID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expires, nil
}

// ParseToken verifies the signature and expiry of tokenString.
// Expired tokens yield common.ErrTokenExpired, anything else unusable
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
		return nil, errors.Join(common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" || claims.SessionID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
