package service

import (
	"context"
	"time"

	"github.com/scentworks/parfum/internal/catalog/store"
	"github.com/scentworks/parfum/pkg/jwtx"
	"github.com/scentworks/parfum/pkg/notesdk"
)

// TokenPair is the result of a successful password login: a local access
// token plus the delegated token obtained from the notes service.
type TokenPair struct {
	AccessToken string
	NotesToken  string
}

// TokenService issues access tokens for authenticated credentials.
type TokenService struct {
	Users     *UserService
	Store     store.Store
	Notes     *notesdk.Client
	Signer    *jwtx.Signer
	AccessTTL time.Duration
}

func NewTokenService(users *UserService, st store.Store, notes *notesdk.Client, signer *jwtx.Signer, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	return &TokenService{Users: users, Store: st, Notes: notes, Signer: signer, AccessTTL: ttl}
}

// PasswordLogin authenticates the credentials, obtains a fresh delegated
// token from the notes service, persists it on the identity, and signs a
// local access token. A notes service failure aborts the whole login.
func (s *TokenService) PasswordLogin(ctx context.Context, username, password string) (TokenPair, error) {
	u, err := s.Users.AuthenticateCredentials(ctx, username, password)
	if err != nil {
		return TokenPair{}, err
	}

	remote, err := s.Notes.Login(ctx, username, password)
	if err != nil {
		return TokenPair{}, &DependencyError{Op: "login", Err: err}
	}

	if err := s.Store.Users().UpdateNotesToken(ctx, u.Username, remote.AccessToken); err != nil {
		return TokenPair{}, err
	}

	access, err := s.Signer.Sign(u.Username, s.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, NotesToken: remote.AccessToken}, nil
}
