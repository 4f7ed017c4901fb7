// Package jwtx issues and verifies the signed bearer tokens used by the
// JANUS API. Tokens are HS256-signed JWTs binding a subject (user id) and a
// role claim, with an expiry. Access tokens and password-reset tokens use
// separate Makers with separate secrets so one can never stand in for the
// other.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/janus-care/janus/pkg/idx"
)

// ErrInvalidToken covers tampered, expired, and otherwise unverifiable
// tokens. Callers should fail closed on it.
var ErrInvalidToken = errors.New("jwtx: invalid or expired token")

// Claims carries the identity bound into a token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Maker signs and verifies tokens for a single purpose (access or reset).
type Maker struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewMaker(secret string, ttl time.Duration, issuer string) *Maker {
	return &Maker{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// TTL returns the configured token lifetime.
func (m *Maker) TTL() time.Duration { return m.ttl }

// Sign issues a token bound to (userID, role). The returned jti uniquely
// identifies this token issuance, so single-use ledgers can track it.
func (m *Maker) Sign(userID, role string) (token, jti string, err error) {
	now := time.Now()
	jti = idx.New().String()

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

// Verify checks signature, expiry and issuer, returning the claims on
// success and ErrInvalidToken on any failure.
func (m *Maker) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
