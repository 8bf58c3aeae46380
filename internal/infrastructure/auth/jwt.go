package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// TokenIssuer implements ports.TokenIssuer with HS256. The signing secret
// and issuer are threaded in at construction; nothing here reads ambient
// configuration.
type TokenIssuer struct {
	secret []byte
	issuer string
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

func NewTokenIssuer(secret []byte, issuer string) *TokenIssuer {
	return &TokenIssuer{secret: secret, issuer: issuer}
}

func (t *TokenIssuer) IssueAccessToken(userID string, expiresInSeconds int64) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresInSeconds) * time.Second)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", domerrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", domerrors.ErrInvalidToken
	}
	return claims.UserID, nil
}
