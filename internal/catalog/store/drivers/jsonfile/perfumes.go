package jsonfile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
)

// Durable form: {"perfume": [{"Name", "Brand", "Notes"}, ...]}. Order in the
// array is storage order and must round-trip unchanged.
type perfumeDocument struct {
	Perfume *[]perfumeRecord `json:"perfume"`
}

type perfumeRecord struct {
	Name  string `json:"Name"`
	Brand string `json:"Brand"`
	Notes string `json:"Notes"`
}

type perfumesRepo struct {
	path string

	mu       sync.RWMutex
	perfumes []domain.Perfume
}

func (r *perfumesRepo) load() error {
	var doc perfumeDocument
	found, err := readDocument(r.path, &doc)
	if err != nil {
		return err
	}
	if !found {
		r.perfumes = nil
		return nil
	}
	if doc.Perfume == nil {
		return errors.New(`malformed document: missing "perfume" key`)
	}

	perfumes := make([]domain.Perfume, 0, len(*doc.Perfume))
	for _, rec := range *doc.Perfume {
		perfumes = append(perfumes, domain.Perfume(rec))
	}
	r.perfumes = perfumes
	return nil
}

// persist rewrites the whole collection; see usersRepo.persist for the
// swap-on-success discipline.
func (r *perfumesRepo) persist(perfumes []domain.Perfume) error {
	records := make([]perfumeRecord, 0, len(perfumes))
	for _, p := range perfumes {
		records = append(records, perfumeRecord(p))
	}

	doc := perfumeDocument{Perfume: &records}
	if err := writeDocument(r.path, doc); err != nil {
		return err
	}
	r.perfumes = perfumes
	return nil
}

func (r *perfumesRepo) List(ctx context.Context) ([]domain.Perfume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Perfume, len(r.perfumes))
	copy(out, r.perfumes)
	return out, nil
}

func (r *perfumesRepo) FindByName(ctx context.Context, name string) (domain.Perfume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.perfumes {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return domain.Perfume{}, store.ErrNotFound
}

func (r *perfumesRepo) SearchNotes(ctx context.Context, fragment string) ([]domain.NoteMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(fragment)
	matches := make([]domain.NoteMatch, 0)
	for _, p := range r.perfumes {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, domain.NoteMatch{Name: p.Name, Notes: p.Notes})
		}
	}
	return matches, nil
}

func (r *perfumesRepo) Recommend(ctx context.Context, preferences, dislikes []string) ([]domain.Perfume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Perfume, 0)
	for _, p := range r.perfumes {
		if domain.NotesMatch(p.Notes, preferences, dislikes) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (r *perfumesRepo) Add(ctx context.Context, p domain.Perfume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Most-recent-first: new records go to the front.
	next := make([]domain.Perfume, 0, len(r.perfumes)+1)
	next = append(next, p)
	next = append(next, r.perfumes...)

	return r.persist(next)
}

func (r *perfumesRepo) AppendNotes(ctx context.Context, name, addition string) (domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Perfume, len(r.perfumes))
	copy(next, r.perfumes)

	for i := range next {
		if !strings.EqualFold(next[i].Name, name) {
			continue
		}

		if next[i].Notes != "" {
			next[i].Notes = next[i].Notes + ", " + strings.TrimSpace(addition)
		} else {
			next[i].Notes = strings.TrimSpace(addition)
		}

		if err := r.persist(next); err != nil {
			return domain.Perfume{}, err
		}
		return next[i], nil
	}
	return domain.Perfume{}, store.ErrNotFound
}

func (r *perfumesRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.perfumes {
		if !strings.EqualFold(r.perfumes[i].Name, name) {
			continue
		}

		next := make([]domain.Perfume, 0, len(r.perfumes)-1)
		next = append(next, r.perfumes[:i]...)
		next = append(next, r.perfumes[i+1:]...)

		return r.persist(next)
	}
	return store.ErrNotFound
}
