// Package service holds the business logic between the HTTP surface and the
// store drivers. Services hold no request state and are safe for concurrent
// use.
package service

import (
	"context"
	"errors"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
	"github.com/scentworks/parfum/pkg/cryptox"
	"github.com/scentworks/parfum/pkg/notesdk"
)

// UserService owns registration and credential checks.
type UserService struct {
	Store store.Store
	Notes *notesdk.Client
}

func NewUserService(st store.Store, notes *notesdk.Client) *UserService {
	return &UserService{Store: st, Notes: notes}
}

// Register creates a local identity and then mirrors the registration to the
// notes service. The local record is committed before the remote call, so a
// remote failure leaves the user registered here but absent upstream. The
// caller gets a DependencyError in that case; a later registration attempt
// with the same username will report it as taken.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	users := s.Store.Users()

	// Pick up writes from other processes sharing the durable store before
	// the duplicate check. This narrows the race window; the store's own
	// uniqueness check closes it within this process.
	if err := users.Reload(ctx); err != nil {
		return domain.User{}, err
	}

	if _, err := users.GetByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	created, err := users.Create(ctx, domain.User{
		Username:     username,
		Role:         domain.RoleUser,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	if err := s.Notes.Register(ctx, username, password); err != nil {
		return created, &DependencyError{Op: "register", Err: err}
	}
	return created, nil
}

// AuthenticateCredentials resolves a username/password pair to an identity.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *UserService) AuthenticateCredentials(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	return u, nil
}
