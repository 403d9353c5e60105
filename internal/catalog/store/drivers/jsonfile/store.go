// Package jsonfile is the default store driver. Each collection lives in one
// JSON document (user.json, perfume.json) that is read once at startup and
// rewritten wholesale on every mutation. The in-memory collection is the
// source of truth while the process runs.
//
// Durable writes are a plain full-file replace, not an atomic rename: a crash
// mid-write can leave a corrupt file. That is accepted for this store's scope.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/scentworks/parfum/internal/catalog/store"
)

type Store struct {
	users    *usersRepo
	perfumes *perfumesRepo
}

// Open loads both collections from disk. Missing files start the collection
// empty; malformed files fail fast so a schema problem is a startup error,
// not a panic at first field access.
func Open(userPath, perfumePath string) (*Store, error) {
	users := &usersRepo{path: userPath}
	if err := users.load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", userPath, err)
	}

	perfumes := &perfumesRepo{path: perfumePath}
	if err := perfumes.load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", perfumePath, err)
	}

	return &Store{users: users, perfumes: perfumes}, nil
}

func (s *Store) Users() store.Users       { return s.users }
func (s *Store) Perfumes() store.Perfumes { return s.perfumes }

// Ping verifies the durable files are still reachable. A file that does not
// exist yet is fine; it is created on the first mutation.
func (s *Store) Ping(ctx context.Context) error {
	for _, path := range []string{s.users.path, s.perfumes.path} {
		if _, err := os.Stat(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error { return nil }

// readDocument decodes a durable file into dst, distinguishing "file absent"
// (ok, start empty) from "file malformed" (fail fast).
func readDocument(path string, dst any) (found bool, err error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("malformed document: %w", err)
	}
	return true, nil
}

// writeDocument serializes the full collection document and replaces the file.
func writeDocument(path string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0600)
}
