package jwtx

import "errors"

var (
	// ErrMalformed reports a token that could not be parsed at all.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrSignature reports a token whose signature does not verify against
	// the configured secret.
	ErrSignature = errors.New("jwtx: signature verification failed")

	// ErrExpired reports a token past its expiry.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrIssuer reports a token minted by an unexpected issuer.
	ErrIssuer = errors.New("jwtx: unexpected issuer")
)
