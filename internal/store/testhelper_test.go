package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zx06/pw/internal/credential"
)

// openTestStore bootstraps a fresh data file under t.TempDir().
func openTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pw.db")
	s, xe := Open(context.Background(), path, nil)
	if xe != nil {
		t.Fatalf("open test store: %v", xe)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustInsert(t *testing.T, s *Store, name, category, username, password string) credential.Credential {
	t.Helper()

	c, xe := s.Insert(context.Background(), credential.Credential{
		Name:     name,
		Category: category,
		Username: username,
		Password: password,
	})
	require.Nil(t, xe)
	return c
}
