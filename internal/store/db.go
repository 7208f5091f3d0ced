// Package store owns the on-disk credential database: bootstrapping the file
// and every read or write of credential rows.
package store

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/log"
)

// Store is the SQLite-backed credential store. It holds one connection for
// the lifetime of a command.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// dsn keeps the rollback journal (no -wal/-shm side files next to a synced
// data file) and takes the write lock when a transaction begins.
func dsn(path string) string {
	return filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_txlock=immediate"
}

// bootstrapSQL runs once against a new or zero-byte data file.
var bootstrapSQL = []string{createCredentialsTable}

// Open opens the database at path, creating the file and its credentials
// table when the file does not exist yet or is empty. A non-empty file is
// used as is. A file created here is removed again if bootstrapping fails.
// Failures are returned as PW_STORE_OPEN_FAILED; callers treat them as fatal.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, *errors.XError) {
	if logger == nil {
		logger = log.Discard()
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.CodeCfgInvalid, "data path is required", nil)
	}
	details := map[string]any{"path": path}

	size, existed, xe := statFile(path)
	if xe != nil {
		return nil, xe
	}
	fresh := !existed || size == 0

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, errors.Wrap(errors.CodeStoreOpenFailed, "failed to open data file", details, err)
	}
	db.SetMaxOpenConns(1)

	// 失败时删除本次新建的文件，避免下次把空文件当成已初始化的库
	abort := func(message string, err error) (*Store, *errors.XError) {
		_ = db.Close()
		if !existed {
			_ = os.Remove(path)
		}
		return nil, errors.Wrap(errors.CodeStoreOpenFailed, message, details, err)
	}

	if err := db.PingContext(ctx); err != nil {
		return abort("failed to open data file", err)
	}

	if fresh {
		for _, stmt := range bootstrapSQL {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return abort("failed to create credentials table", err)
			}
		}
		logger.Debug("created credential store", "path", path)
	} else {
		logger.Debug("opened credential store", "path", path)
	}

	return &Store{db: db, path: path, logger: logger}, nil
}

// statFile reports the size of the regular file at path and whether it exists.
func statFile(path string) (int64, bool, *errors.XError) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(errors.CodeStoreOpenFailed, "data path is unreachable", map[string]any{"path": path}, err)
	}
	if !fi.Mode().IsRegular() {
		return 0, false, errors.New(errors.CodeStoreOpenFailed, "data path is not a regular file", map[string]any{"path": path})
	}
	return fi.Size(), true, nil
}

// Path returns the data file the store was opened on.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
