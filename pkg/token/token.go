package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the absolute token lifetime.
const TokenTTL = time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the identity fields embedded in a bearer token.
type Claims struct {
	UserID int
	Email  string
}

// Generate issues an HS256-signed token carrying the user's id and email.
func Generate(secret string, userID int, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(TokenTTL).Unix(),
	})
	return t.SignedString([]byte(secret))
}

// Verify parses a token and returns its claims. Expired tokens and tokens
// with an unexpected signing method or a bad signature are rejected.
func Verify(secret string, tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: int(userID), Email: email}, nil
}
