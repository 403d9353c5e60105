package store

import (
	"context"
	"errors"

	"github.com/scentworks/parfum/internal/catalog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (jsonfile,
// sqlite) implement this. Both collections are independent: a writer in one
// never blocks the other.
type Store interface {
	Users() Users
	Perfumes() Perfumes

	// Ping verifies the durable backing is still reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Users owns the identity collection. Every mutation is a serialized
// read-modify-write followed by a full durable rewrite.
type Users interface {
	// GetByUsername returns the identity for an exact, case-sensitive
	// username match.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Create appends a new identity, assigning the next id. Returns
	// ErrAlreadyExists if the username is already present (case-sensitive).
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateNotesToken overwrites the stored delegated token and persists.
	UpdateNotesToken(ctx context.Context, username, token string) error

	// Reload re-reads the durable store. Drivers whose durable form is
	// always authoritative implement this as a no-op. The registration path
	// calls it first to narrow (not close) the duplicate-username race
	// window between processes sharing the file.
	Reload(ctx context.Context) error
}

// Perfumes owns the ordered perfume collection. Order is insertion order with
// new records at the front, and is preserved across persistence round-trips.
type Perfumes interface {
	// List returns the full collection in storage order.
	List(ctx context.Context) ([]domain.Perfume, error)

	// FindByName returns the first case-insensitive exact name match.
	FindByName(ctx context.Context, name string) (domain.Perfume, error)

	// SearchNotes returns the name and notes of every record whose name
	// contains fragment (case-insensitive), in storage order. An empty
	// result is not an error here; callers map it to their own not-found.
	SearchNotes(ctx context.Context, fragment string) ([]domain.NoteMatch, error)

	// Recommend returns records whose notes contain every preference and
	// none of the dislikes (case-insensitive substring), in storage order.
	Recommend(ctx context.Context, preferences, dislikes []string) ([]domain.Perfume, error)

	// Add prepends a record (most-recent-first) and persists.
	Add(ctx context.Context, p domain.Perfume) error

	// AppendNotes appends to the notes of the first case-insensitive name
	// match: "current, addition" when current is non-empty, otherwise the
	// trimmed addition alone. Returns the updated record, or ErrNotFound.
	AppendNotes(ctx context.Context, name, addition string) (domain.Perfume, error)

	// Delete removes the first case-insensitive name match and persists.
	// Returns ErrNotFound if nothing matches.
	Delete(ctx context.Context, name string) error
}
