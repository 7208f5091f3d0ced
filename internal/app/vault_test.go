package app

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zx06/pw/internal/clipboard"
	"github.com/zx06/pw/internal/credential"
	"github.com/zx06/pw/internal/errors"
	"github.com/zx06/pw/internal/prompt"
	"github.com/zx06/pw/internal/secret"
	"github.com/zx06/pw/internal/store"
)

type fakeKeyring map[string]string

func (k fakeKeyring) Get(service, account string) (string, error) {
	if v, ok := k[service+"/"+account]; ok {
		return v, nil
	}
	return "", fmt.Errorf("not found: %s/%s", service, account)
}

type harness struct {
	store   *store.Store
	clip    *clipboard.Memory
	notices *bytes.Buffer
	prompts *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s, xe := store.Open(context.Background(), filepath.Join(t.TempDir(), "pw.db"), nil)
	require.Nil(t, xe)
	t.Cleanup(func() { _ = s.Close() })

	return &harness{
		store:   s,
		clip:    &clipboard.Memory{},
		notices: &bytes.Buffer{},
		prompts: &bytes.Buffer{},
	}
}

// vault returns a Vault whose interactive input is the given text.
func (h *harness) vault(input string) *Vault {
	return NewVault(Deps{
		Store:     h.store,
		Input:     prompt.New(strings.NewReader(input), h.prompts),
		Clipboard: h.clip,
		Notices:   h.notices,
		Keyring:   fakeKeyring{"vpn/bob": "from-keyring"},
	})
}

func TestNew_CreatesCredential(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, xe := h.vault("alice\nsecret\n").New(ctx, "work", "foo")
	require.Nil(t, xe)
	assert.Equal(t, NewCreated, res.Status)
	assert.NotZero(t, res.ID)

	assert.Equal(t, "Creating new credentials named \"foo\" in category \"work\"\n", h.notices.String())
	assert.Equal(t, "Username: Password: ", h.prompts.String())

	got, xe := h.store.GetByName(ctx, "foo")
	require.Nil(t, xe)
	assert.Equal(t, credential.Credential{ID: res.ID, Name: "foo", Category: "work", Username: "alice", Password: "secret"}, got)

	var out bytes.Buffer
	require.NoError(t, res.RenderText(&out))
	assert.Equal(t, "Saved.\n", out.String())
}

func TestNew_NoCategoryNotice(t *testing.T) {
	h := newHarness(t)

	_, xe := h.vault("u\np\n").New(context.Background(), "", "foo")
	require.Nil(t, xe)
	assert.Equal(t, "Creating new credentials named \"foo\"\n", h.notices.String())
}

func TestNew_DuplicateIsSoft(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("alice\nsecret\n").New(ctx, "", "foo")
	require.Nil(t, xe)
	h.notices.Reset()
	h.prompts.Reset()

	// No input is available: a prompt would fail with PW_INPUT_MISSING.
	res, xe := h.vault("").New(ctx, "", "foo")
	require.Nil(t, xe)
	assert.Equal(t, NewExists, res.Status)
	assert.Empty(t, h.notices.String())
	assert.Empty(t, h.prompts.String())

	var out bytes.Buffer
	require.NoError(t, res.RenderText(&out))
	assert.Equal(t, "A credential with this name already exists.\n", out.String())

	entries, xe := h.store.List(ctx, credential.AnyCategory())
	require.Nil(t, xe)
	assert.Len(t, entries, 1)
}

func TestNew_MissingInputAborts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("alice\n").New(ctx, "", "foo")
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeInputMissing, xe.Code)

	ok, xe := h.store.Exists(ctx, "foo")
	require.Nil(t, xe)
	assert.False(t, ok, "nothing is stored when input is missing")
}

func TestNew_EmptyUsernameAndPasswordAllowed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("\n\n").New(ctx, "", "blank")
	require.Nil(t, xe)

	got, xe := h.store.GetByName(ctx, "blank")
	require.Nil(t, xe)
	assert.Equal(t, "", got.Username)
	assert.Equal(t, "", got.Password)
}

func TestNew_EmptyName(t *testing.T) {
	h := newHarness(t)

	_, xe := h.vault("").New(context.Background(), "", "")
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeCfgInvalid, xe.Code)
}

func TestNew_WhitespaceNameIsStoredAsGiven(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("u\np\n").New(ctx, "", " ")
	require.Nil(t, xe)

	got, xe := h.store.GetByName(ctx, " ")
	require.Nil(t, xe)
	assert.Equal(t, " ", got.Name)
}

func TestNew_KeyringLikePasswordIsLiteral(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for name, password := range map[string]string{
		"plain":     "keyring:hunter2",
		"reference": "keyring:vpn/bob",
	} {
		_, xe := h.vault("bob\n"+password+"\n").New(ctx, "", name)
		require.Nil(t, xe, name)

		got, xe := h.store.GetByName(ctx, name)
		require.Nil(t, xe, name)
		assert.Equal(t, password, got.Password, name)
	}
}

func TestNewFromKeyring(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, xe := h.vault("bob\n").NewFromKeyring(ctx, "net", "vpn", secret.Ref{Service: "vpn", Account: "bob"})
	require.Nil(t, xe)
	assert.Equal(t, NewCreated, res.Status)
	assert.NotContains(t, h.prompts.String(), "Password:")

	got, xe := h.store.GetByName(ctx, "vpn")
	require.Nil(t, xe)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "from-keyring", got.Password)
}

func TestNewFromKeyring_MissingEntry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("bob\n").NewFromKeyring(ctx, "net", "vpn", secret.Ref{Service: "vpn", Account: "nobody"})
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeSecretNotFound, xe.Code)

	taken, xe := h.store.Exists(ctx, "vpn")
	require.Nil(t, xe)
	assert.False(t, taken)
}

func TestList_GroupedRendering(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, c := range []struct{ cat, name string }{{"", "a"}, {"cat1", "b"}, {"cat1", "c"}, {"cat2", "d"}} {
		_, xe := h.vault("u\np\n").New(ctx, c.cat, c.name)
		require.Nil(t, xe)
	}

	listing, xe := h.vault("").List(ctx, credential.AnyCategory())
	require.Nil(t, xe)

	var out bytes.Buffer
	require.NoError(t, listing.RenderText(&out))
	assert.Equal(t, "    a\n\nCategory: cat1\n    b\n    c\n\nCategory: cat2\n    d\n", out.String())

	listing, xe = h.vault("").List(ctx, credential.InCategory("cat1"))
	require.Nil(t, xe)
	out.Reset()
	require.NoError(t, listing.RenderText(&out))
	assert.Equal(t, "\nCategory: cat1\n    b\n    c\n", out.String())
}

func TestList_EmptyPrintsNothing(t *testing.T) {
	h := newHarness(t)

	listing, xe := h.vault("").List(context.Background(), credential.AnyCategory())
	require.Nil(t, xe)

	var out bytes.Buffer
	require.NoError(t, listing.RenderText(&out))
	assert.Empty(t, out.String())
}

func TestShow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("alice\nsecret\n").New(ctx, "work", "foo")
	require.Nil(t, xe)

	c, xe := h.vault("").Show(ctx, "foo")
	require.Nil(t, xe)

	var out bytes.Buffer
	require.NoError(t, c.RenderText(&out))
	assert.Equal(t, "foo:\n    alice\n    secret\n", out.String())

	_, xe = h.vault("").Show(ctx, "bar")
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeNotFound, xe.Code)
}

func TestCopy(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("alice\nsecret\n").New(ctx, "", "foo")
	require.Nil(t, xe)

	res, xe := h.vault("").Copy(ctx, "foo", credential.FieldUsername)
	require.Nil(t, xe)
	assert.Equal(t, "alice", h.clip.Contents())

	var out bytes.Buffer
	require.NoError(t, res.RenderText(&out))
	assert.Equal(t, "foo username copied to clipboard.\n", out.String())

	res, xe = h.vault("").Copy(ctx, "foo", credential.FieldPassword)
	require.Nil(t, xe)
	assert.Equal(t, "secret", h.clip.Contents())
	out.Reset()
	require.NoError(t, res.RenderText(&out))
	assert.Equal(t, "foo password copied to clipboard.\n", out.String())
}

func TestCopy_NotFoundLeavesClipboard(t *testing.T) {
	h := newHarness(t)

	_, xe := h.vault("").Copy(context.Background(), "missing", credential.FieldPassword)
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeNotFound, xe.Code)
	assert.Zero(t, h.clip.Writes())
}

func TestCopy_ClipboardFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, xe := h.vault("alice\nsecret\n").New(ctx, "", "foo")
	require.Nil(t, xe)

	h.clip.Err = errors.New(errors.CodeClipboardFailed, "no display", nil)
	_, xe = h.vault("").Copy(ctx, "foo", credential.FieldPassword)
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeClipboardFailed, xe.Code)
}

// failingStore fails every call; Unsupported must never reach it.
type failingStore struct{ calls int }

func (f *failingStore) fail() *errors.XError {
	f.calls++
	return errors.New(errors.CodeStorageFailed, "unexpected store access", nil)
}

func (f *failingStore) Exists(context.Context, string) (bool, *errors.XError) { return false, f.fail() }
func (f *failingStore) Insert(context.Context, credential.Credential) (credential.Credential, *errors.XError) {
	return credential.Credential{}, f.fail()
}
func (f *failingStore) GetByName(context.Context, string) (credential.Credential, *errors.XError) {
	return credential.Credential{}, f.fail()
}
func (f *failingStore) List(context.Context, credential.Filter) ([]credential.Entry, *errors.XError) {
	return nil, f.fail()
}

func TestUnsupported(t *testing.T) {
	fs := &failingStore{}
	v := NewVault(Deps{Store: fs})

	for cmd, want := range map[string]string{
		"edit":   "Edit not yet implemented\n",
		"delete": "Delete not yet implemented\n",
	} {
		res := v.Unsupported(cmd)
		assert.Equal(t, "not_implemented", res.Status)

		var out bytes.Buffer
		require.NoError(t, res.RenderText(&out))
		assert.Equal(t, want, out.String())
	}
	assert.Zero(t, fs.calls)
}

func TestStoreErrorsPropagate(t *testing.T) {
	fs := &failingStore{}
	v := NewVault(Deps{Store: fs, Input: prompt.New(strings.NewReader(""), &bytes.Buffer{})})
	ctx := context.Background()

	_, xe := v.New(ctx, "", "foo")
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeStorageFailed, xe.Code)

	_, xe = v.List(ctx, credential.AnyCategory())
	require.NotNil(t, xe)
	assert.Equal(t, errors.CodeStorageFailed, xe.Code)
}
