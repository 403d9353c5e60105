package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
)

type perfumesRepo struct {
	db *sql.DB
}

// listOrdered reads the whole collection newest-first. Substring filters run
// in Go on top of this so matching stays identical to the jsonfile driver.
func (r *perfumesRepo) listOrdered(ctx context.Context) ([]domain.Perfume, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, brand, notes FROM perfumes ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perfumes := make([]domain.Perfume, 0)
	for rows.Next() {
		var p domain.Perfume
		if err := rows.Scan(&p.Name, &p.Brand, &p.Notes); err != nil {
			return nil, err
		}
		perfumes = append(perfumes, p)
	}
	return perfumes, rows.Err()
}

func (r *perfumesRepo) List(ctx context.Context) ([]domain.Perfume, error) {
	return r.listOrdered(ctx)
}

func (r *perfumesRepo) FindByName(ctx context.Context, name string) (domain.Perfume, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, brand, notes FROM perfumes
		 WHERE lower(name) = lower(?) ORDER BY seq DESC LIMIT 1`, name)

	var p domain.Perfume
	if err := row.Scan(&p.Name, &p.Brand, &p.Notes); err != nil {
		return domain.Perfume{}, mapNotFound(err)
	}
	return p, nil
}

func (r *perfumesRepo) SearchNotes(ctx context.Context, fragment string) ([]domain.NoteMatch, error) {
	perfumes, err := r.listOrdered(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	matches := make([]domain.NoteMatch, 0)
	for _, p := range perfumes {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, domain.NoteMatch{Name: p.Name, Notes: p.Notes})
		}
	}
	return matches, nil
}

func (r *perfumesRepo) Recommend(ctx context.Context, preferences, dislikes []string) ([]domain.Perfume, error) {
	perfumes, err := r.listOrdered(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Perfume, 0)
	for _, p := range perfumes {
		if domain.NotesMatch(p.Notes, preferences, dislikes) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (r *perfumesRepo) Add(ctx context.Context, p domain.Perfume) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO perfumes (name, brand, notes) VALUES (?, ?, ?)`,
		p.Name, p.Brand, p.Notes)
	return err
}

func (r *perfumesRepo) AppendNotes(ctx context.Context, name, addition string) (domain.Perfume, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Perfume{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT seq, name, brand, notes FROM perfumes
		 WHERE lower(name) = lower(?) ORDER BY seq DESC LIMIT 1`, name)

	var seq int64
	var p domain.Perfume
	if err := row.Scan(&seq, &p.Name, &p.Brand, &p.Notes); err != nil {
		return domain.Perfume{}, mapNotFound(err)
	}

	if p.Notes != "" {
		p.Notes = p.Notes + ", " + strings.TrimSpace(addition)
	} else {
		p.Notes = strings.TrimSpace(addition)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE perfumes SET notes = ? WHERE seq = ?`, p.Notes, seq); err != nil {
		return domain.Perfume{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Perfume{}, err
	}
	return p, nil
}

func (r *perfumesRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM perfumes WHERE seq = (
		     SELECT seq FROM perfumes
		     WHERE lower(name) = lower(?) ORDER BY seq DESC LIMIT 1
		 )`, name)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
