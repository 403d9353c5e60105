package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scentworks/parfum/pkg/idx"
)

// Signer mints HS256 access tokens over a single process-wide secret.
// Rotating the secret invalidates every outstanding token; that is accepted
// behavior for this service, there is no key-rotation protocol.
type Signer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewSigner creates a Signer. The secret must be shared with the Verifier.
func NewSigner(secret []byte, issuer string) *Signer {
	return &Signer{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
	}
}

// WithClock replaces the wall clock, enabling deterministic expiry tests.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

// Sign produces a signed token for subject with an absolute expiry of
// now + ttl.
func (s *Signer) Sign(subject string, ttl time.Duration) (string, error) {
	now := s.now().UTC()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
