package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "requestdesk"

var ErrInvalidToken = errors.New("invalid session token")

type TokenClaims struct {
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token whose subject is the session id.
func SignToken(sessionID string, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("missing session id")
	}
	if len(secret) == 0 {
		return "", fmt.Errorf("missing session secret")
	}
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return s, nil
}

// VerifyToken checks signature, issuer and expiry and returns the session id.
func VerifyToken(tokenString string, secret []byte, now time.Time) (string, error) {
	claims, err := parseToken(tokenString, secret, now)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func parseToken(tokenString string, secret []byte, now time.Time) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: missing token", ErrInvalidToken)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	claims := &TokenClaims{}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
