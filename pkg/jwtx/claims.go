package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens issued by a
// Signer when the application does not configure its own. It is deliberately a
// documented option rather than a constant buried in signing logic.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims used across the service. The subject is
// the username of the authenticated identity; role and any other authorization
// data are resolved from the credential store per request, never trusted from
// the token itself.
type Claims struct {
	jwt.RegisteredClaims
}
