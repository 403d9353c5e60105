package jsonfile

import (
	"context"
	"errors"
	"sync"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
)

// Durable form: {"user": [{"id", "username", "role", "hashed_password",
// "notes_token"}, ...]}.
type userDocument struct {
	User *[]userRecord `json:"user"`
}

type userRecord struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	HashedPassword string `json:"hashed_password"`
	NotesToken     string `json:"notes_token"`
}

type usersRepo struct {
	path string

	mu    sync.RWMutex
	users []domain.User
}

func (r *usersRepo) load() error {
	var doc userDocument
	found, err := readDocument(r.path, &doc)
	if err != nil {
		return err
	}
	if !found {
		r.users = nil
		return nil
	}
	if doc.User == nil {
		return errors.New(`malformed document: missing "user" key`)
	}

	users := make([]domain.User, 0, len(*doc.User))
	for _, rec := range *doc.User {
		users = append(users, domain.User{
			ID:           rec.ID,
			Username:     rec.Username,
			Role:         rec.Role,
			PasswordHash: rec.HashedPassword,
			NotesToken:   rec.NotesToken,
		})
	}
	r.users = users
	return nil
}

// persist rewrites the whole collection. Callers hold the write lock and pass
// the candidate state; the in-memory slice is only swapped in after the write
// succeeds, so a failed write never corrupts memory.
func (r *usersRepo) persist(users []domain.User) error {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, userRecord{
			ID:             u.ID,
			Username:       u.Username,
			Role:           u.Role,
			HashedPassword: u.PasswordHash,
			NotesToken:     u.NotesToken,
		})
	}

	doc := userDocument{User: &records}
	if err := writeDocument(r.path, doc); err != nil {
		return err
	}
	r.users = users
	return nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 1
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.User{}, store.ErrAlreadyExists
		}
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	u.ID = nextID

	next := make([]domain.User, len(r.users), len(r.users)+1)
	copy(next, r.users)
	next = append(next, u)

	if err := r.persist(next); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) UpdateNotesToken(ctx context.Context, username, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.User, len(r.users))
	copy(next, r.users)

	for i := range next {
		if next[i].Username == username {
			next[i].NotesToken = token
			return r.persist(next)
		}
	}
	return store.ErrNotFound
}

func (r *usersRepo) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}
