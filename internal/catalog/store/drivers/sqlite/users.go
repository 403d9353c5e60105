package sqlite

import (
	"context"
	"database/sql"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	// username comparison is BINARY collation, so the key stays case-sensitive.
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, role, hashed_password, notes_token
		 FROM users WHERE username = ?`, username)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Role, &u.PasswordHash, &u.NotesToken); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, role, hashed_password, notes_token)
		 VALUES (?, ?, ?, ?)`,
		u.Username, u.Role, u.PasswordHash, u.NotesToken)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, store.ErrAlreadyExists
		}
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	u.ID = int(id)
	return u, nil
}

func (r *usersRepo) UpdateNotesToken(ctx context.Context, username, token string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET notes_token = ? WHERE username = ?`, token, username)
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

// Reload is a no-op: the database is always the authoritative copy.
func (r *usersRepo) Reload(ctx context.Context) error { return nil }
