package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zx06/pw/internal/credential"
	"github.com/zx06/pw/internal/errors"
)

func TestIsNotFound(t *testing.T) {
	s := openTestStore(t)

	_, xe := s.GetByName(context.Background(), "missing")
	require.NotNil(t, xe)
	assert.True(t, IsNotFound(xe))
	assert.False(t, IsDuplicateName(xe))
	assert.True(t, IsNotFound(fmt.Errorf("show: %w", xe)))
}

func TestIsDuplicateName(t *testing.T) {
	s := openTestStore(t)
	mustInsert(t, s, "foo", "", "u", "p")

	_, xe := s.Insert(context.Background(), credential.Credential{Name: "foo"})
	require.NotNil(t, xe)
	assert.True(t, IsDuplicateName(xe))
	assert.False(t, IsNotFound(xe))
}

func TestErrorHelpers_OtherErrors(t *testing.T) {
	var typedNil *errors.XError

	for _, err := range []error{nil, typedNil, fmt.Errorf("boom"), errors.New(errors.CodeStorageFailed, "disk", nil)} {
		assert.False(t, IsNotFound(err))
		assert.False(t, IsDuplicateName(err))
	}
}
