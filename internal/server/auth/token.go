// Package auth issues and verifies the signed session tokens of the service.
// Tokens are HS256 JWTs carrying the account's public identity. Expiry is the
// only lifecycle control: there is no revocation list, so a token stays valid
// until its TTL runs out (or longer, when sliding renewal keeps re-issuing it).
package auth

import (
	"errors"
	"time"

	"github.com/dpetrov/authms/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the identity embedded in a token. After verification the
// registered fields (iat, exp, sub) are folded away and callers only see
// these three values.
type UserClaims struct {
	UserID string
	Name   string
	Email  string
}

// tokenClaims is the wire form of UserClaims. The user id travels as the
// registered subject.
type tokenClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IssueToken signs a token over the given claims with a fresh issued-at and
// an expiry of now+ttl.
func IssueToken(c UserClaims, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  c.Name,
		Email: c.Email,
	})
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry of tokenString and returns the
// embedded identity. Any failure — bad signature, malformed payload, wrong
// signing method, expired token — comes back as common.ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) (UserClaims, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return UserClaims{}, common.ErrInvalidToken
	}

	return UserClaims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
