package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// TokenTTL is the fixed lifetime of an issued session token.
const TokenTTL = 7 * 24 * time.Hour

var errInvalidToken = errors.New("invalid session token")

// Claims defines the information stored in the session token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// only HS256 tokens are accepted; anything else is rejected up front
var tokenParser = jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

// SignToken mints a session token embedding the user id.
func SignToken(userID uuid.UUID, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the embedded user id.
func ParseToken(tokenStr string, secret []byte) (uuid.UUID, error) {
	token, err := tokenParser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, errInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	return userID, nil
}
