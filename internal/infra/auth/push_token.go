// Package auth signs and verifies the bearer tokens carried by push deliveries to the mail worker.
package auth

import (
	"time"

	"tripbook/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	pushTokenIssuer = "tripbook-relay"
	pushTokenTTL    = 5 * time.Minute
)

// PushTokenSigner issues and checks HS256 tokens for the local push provider.
type PushTokenSigner struct {
	secret []byte
	now    func() time.Time
}

// NewPushTokenSigner returns nil when secret is empty, which disables signing.
func NewPushTokenSigner(secret string) *PushTokenSigner {
	if secret == "" {
		return nil
	}

	return &PushTokenSigner{secret: []byte(secret), now: time.Now}
}

// Sign creates a short-lived token whose audience is the push endpoint.
func (s *PushTokenSigner) Sign(audience string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    pushTokenIssuer,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(pushTokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign push token")
	}

	return token, nil
}

// Verify checks signature, issuer, expiry and audience.
func (s *PushTokenSigner) Verify(tokenString, audience string) error {
	_, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithIssuer(pushTokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}

	return nil
}
