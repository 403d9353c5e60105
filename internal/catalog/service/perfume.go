package service

import (
	"context"
	"errors"
	"strings"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
)

// PerfumeService owns catalog reads and admin mutations.
type PerfumeService struct {
	Store store.Store
}

func NewPerfumeService(st store.Store) *PerfumeService {
	return &PerfumeService{Store: st}
}

// normalizeTerms trims each term and drops empties.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Recommend returns perfumes whose notes contain every preference and none of
// the dislikes. An empty preference list is rejected before any scan; a scan
// that matches nothing is ErrNotFound.
func (s *PerfumeService) Recommend(ctx context.Context, preferences, dislikes []string) ([]domain.Perfume, error) {
	preferences = normalizeTerms(preferences)
	dislikes = normalizeTerms(dislikes)
	if len(preferences) == 0 {
		return nil, ErrNoPreferences
	}

	matches, err := s.Store.Perfumes().Recommend(ctx, preferences, dislikes)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}

// NotesByName returns name/notes pairs for every perfume whose name contains
// the fragment. Matching nothing is ErrNotFound.
func (s *PerfumeService) NotesByName(ctx context.Context, fragment string) ([]domain.NoteMatch, error) {
	matches, err := s.Store.Perfumes().SearchNotes(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}

// Add prepends a perfume to the catalog. Names are not unique; a duplicate
// shadows older records in first-match lookups.
func (s *PerfumeService) Add(ctx context.Context, p domain.Perfume) error {
	return s.Store.Perfumes().Add(ctx, p)
}

// AppendNotes appends to the notes of the first name match.
func (s *PerfumeService) AppendNotes(ctx context.Context, name, addition string) (domain.Perfume, error) {
	p, err := s.Store.Perfumes().AppendNotes(ctx, name, addition)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Perfume{}, ErrNotFound
		}
		return domain.Perfume{}, err
	}
	return p, nil
}

// Delete removes the first name match.
func (s *PerfumeService) Delete(ctx context.Context, name string) error {
	err := s.Store.Perfumes().Delete(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
