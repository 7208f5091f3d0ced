package store

import (
	"context"
	stderrors "errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/zx06/pw/internal/credential"
	"github.com/zx06/pw/internal/errors"
)

// Exists reports whether a credential with exactly this name is stored.
func (s *Store) Exists(ctx context.Context, name string) (bool, *errors.XError) {
	ok, err := exists(ctx, s.db, name)
	if err != nil {
		return false, errors.Wrap(errors.CodeStorageFailed, "failed to check credential name", map[string]any{"name": name}, err)
	}
	return ok, nil
}

func exists(ctx context.Context, q dbtx, name string) (bool, error) {
	var n int64
	if err := q.QueryRowContext(ctx, queryExists, name).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert stores c under a fresh id and returns the stored record. The name
// check and the insert share one transaction; the UNIQUE constraint on name
// backs both up. A taken name yields PW_DUPLICATE_NAME.
func (s *Store) Insert(ctx context.Context, c credential.Credential) (credential.Credential, *errors.XError) {
	details := map[string]any{"name": c.Name}

	err := withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		taken, err := exists(ctx, tx, c.Name)
		if err != nil {
			return err
		}
		if taken {
			return errors.New(errors.CodeDuplicateName, "a credential with this name already exists", details)
		}
		res, err := tx.ExecContext(ctx, queryInsert, c.Name, c.Category, c.Username, c.Password)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		c.ID = id
		return nil
	})
	if err != nil {
		if xe, ok := errors.As(err); ok {
			return credential.Credential{}, xe
		}
		if isUniqueViolation(err) {
			return credential.Credential{}, errors.Wrap(errors.CodeDuplicateName, "a credential with this name already exists", details, err)
		}
		return credential.Credential{}, errors.Wrap(errors.CodeStorageFailed, "failed to save credential", details, err)
	}

	s.logger.Debug("credential saved", "id", c.ID, "category", c.Category)
	return c, nil
}

// GetByName returns the credential with exactly this name, or PW_NOT_FOUND.
func (s *Store) GetByName(ctx context.Context, name string) (credential.Credential, *errors.XError) {
	details := map[string]any{"name": name}

	rows, err := s.db.QueryContext(ctx, queryGetByName, name)
	if err != nil {
		return credential.Credential{}, errors.Wrap(errors.CodeStorageFailed, "failed to read credential", details, err)
	}
	defer rows.Close()

	var found []credential.Credential
	for rows.Next() {
		var c credential.Credential
		if err := rows.Scan(&c.ID, &c.Name, &c.Category, &c.Username, &c.Password); err != nil {
			return credential.Credential{}, errors.Wrap(errors.CodeStorageFailed, "failed to scan credential", details, err)
		}
		found = append(found, c)
	}
	if err := rows.Err(); err != nil {
		return credential.Credential{}, errors.Wrap(errors.CodeStorageFailed, "failed to read credential", details, err)
	}

	switch len(found) {
	case 0:
		return credential.Credential{}, errors.New(errors.CodeNotFound, "no such credential saved", details)
	case 1:
		return found[0], nil
	default:
		// The UNIQUE constraint makes this unreachable for files we created.
		return credential.Credential{}, errors.New(errors.CodeInternal, "credential name is not unique", details)
	}
}

// List returns (category, name) pairs ordered by category, then name.
// NULL categories written by other tools read as "".
func (s *Store) List(ctx context.Context, f credential.Filter) ([]credential.Entry, *errors.XError) {
	query, args := queryListAll, []any(nil)
	if c, ok := f.Category(); ok {
		query, args = queryListCategory, []any{c}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorageFailed, "failed to list credentials", nil, err)
	}
	defer rows.Close()

	entries := []credential.Entry{}
	for rows.Next() {
		var e credential.Entry
		if err := rows.Scan(&e.Category, &e.Name); err != nil {
			return nil, errors.Wrap(errors.CodeStorageFailed, "failed to scan credential", nil, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeStorageFailed, "failed to list credentials", nil, err)
	}
	s.logger.Debug("listed credentials", "filter", f.String(), "rows", len(entries))
	return entries, nil
}

// Count returns the number of stored credentials.
func (s *Store) Count(ctx context.Context) (int, *errors.XError) {
	var n int
	if err := s.db.QueryRowContext(ctx, queryCount).Scan(&n); err != nil {
		return 0, errors.Wrap(errors.CodeStorageFailed, "failed to count credentials", nil, err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "credentials.name")
}
